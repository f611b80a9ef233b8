// Package codec persists converted images. BMP is the only format: it is
// lossless and uncompressed, so there is no quality knob to tune.
package codec

import (
	"image"
	"os"

	"golang.org/x/image/bmp"

	"github.com/dcmtools/dcm2bmp/pkg/errors"
)

// Codec writes a rendered image to a path. It exists as an interface so the
// pipeline can be exercised in tests without touching the filesystem format.
type Codec interface {
	Write(img image.Image, path string) error
}

// BMP encodes images as uncompressed BMP files. 8-bit grayscale images are
// written as 8-bit paletted BMPs, preserving every sample.
type BMP struct{}

// Write creates (or truncates) path and encodes img into it.
func (BMP) Write(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeEncode, err, "create %s", path)
	}
	defer f.Close()

	if err := bmp.Encode(f, img); err != nil {
		return errors.Wrap(errors.ErrCodeEncode, err, "encode %s", path)
	}
	return nil
}
