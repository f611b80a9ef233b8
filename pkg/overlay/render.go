package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/dcmtools/dcm2bmp/pkg/dicom"
	"github.com/dcmtools/dcm2bmp/pkg/fonts"
)

// Render draws the metadata overlay on a copy of src and returns it. The
// source image is never modified and the output always has identical
// dimensions. Text is drawn at maximum intensity (full white).
//
// Font size tracks the image: 2% of the short side, floored at 8px, with a
// line pitch of fontSize+2 and a 1% margin. If anything goes wrong while
// drawing, the failure is logged and the original image is returned; this
// stage never fails a conversion.
func Render(src *image.Gray, md dicom.Metadata, logger *log.Logger) (out *image.Gray) {
	if logger == nil {
		logger = log.Default()
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("overlay rendering failed, keeping image without overlay", "panic", r)
			out = src
		}
	}()

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	blocks := Layout(width, height, md)
	if len(blocks) == 0 {
		return src
	}

	shortSide := width
	if height < shortSide {
		shortSide = height
	}
	fontSize := int(math.Round(float64(shortSide) * 0.02))
	if fontSize < 8 {
		fontSize = 8
	}
	margin := int(math.Round(float64(shortSide) * 0.01))
	pitch := fontSize + 2

	// Row-aware copy so sub-images (stride wider than Dx) stay intact.
	dst := image.NewGray(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)

	face := fonts.Face(float64(fontSize))
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Gray{Y: 255}),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()

	for _, block := range blocks {
		y := margin
		if block.Anchor == AnchorBottomLeft {
			y = height - len(block.Lines)*pitch - margin
		}
		for _, line := range block.Lines {
			x := margin
			switch block.Anchor {
			case AnchorTopRight:
				x = width - textWidth(face, line) - margin
			case AnchorTopCentered:
				x = (width - textWidth(face, line)) / 2
			}
			drawer.Dot = fixed.P(bounds.Min.X+x, bounds.Min.Y+y+ascent)
			drawer.DrawString(line)
			y += pitch
		}
	}

	return dst
}

// textWidth measures the rendered advance of s in whole pixels.
func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
