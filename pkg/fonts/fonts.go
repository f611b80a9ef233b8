// Package fonts resolves the font face used for overlay text.
//
// A scalable system font is preferred so the overlay can follow the image
// size; when none can be found or parsed, the fixed 7x13 bitmap face from
// golang.org/x/image/font/basicfont is used instead. The fallback face does
// not honor the requested size, which is acceptable for the small images
// where this tends to matter.
package fonts

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// candidates are the system fonts tried in order. Arial mirrors the font
// medical workstations commonly ship; the rest cover Linux installs.
var candidates = []string{
	"arial.ttf",
	"Arial.ttf",
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
}

var (
	parsedOnce sync.Once
	parsed     *truetype.Font
)

// systemFont locates and parses the first available candidate font.
// The parse result is cached; only face construction depends on size.
func systemFont() *truetype.Font {
	parsedOnce.Do(func() {
		for _, name := range candidates {
			path, err := findfont.Find(name)
			if err != nil {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			f, err := truetype.Parse(data)
			if err != nil {
				continue
			}
			parsed = f
			return
		}
	})
	return parsed
}

// Face returns a font face for the given point size. It never returns nil:
// when no scalable system font is available the fixed basicfont face is
// returned, whose size is not guaranteed to match the request.
func Face(size float64) font.Face {
	f := systemFont()
	if f == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
