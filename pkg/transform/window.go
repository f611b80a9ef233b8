package transform

import (
	"strconv"
	"strings"

	"github.com/dcmtools/dcm2bmp/pkg/errors"
)

// Params holds an intensity window: the sub-range center ± width/2 is mapped
// to the full display range, everything outside is clipped to the bounds.
type Params struct {
	Center float64
	Width  float64
}

// Bounds returns the lower and upper clip limits of the window.
func (p Params) Bounds() (lower, upper float64) {
	return p.Center - p.Width/2, p.Center + p.Width/2
}

// ResolveWindow derives the effective window for one file. Dataset-provided
// raw tag values override the caller defaults, but only when both center and
// width are present; multi-valued tags (backslash-separated) contribute their
// first element. The width is floored to 1.0 after resolution.
//
// A malformed tag value returns an error so the caller can degrade to the
// unclipped buffer; the defaults are returned alongside it.
func ResolveWindow(def Params, centerRaw, widthRaw string) (Params, error) {
	p := def
	if centerRaw != "" && widthRaw != "" {
		center, err := parseFirstValue(centerRaw)
		if err != nil {
			return floorWidth(def), errors.Wrap(errors.ErrCodeWindowing, err, "malformed window center %q", centerRaw)
		}
		width, err := parseFirstValue(widthRaw)
		if err != nil {
			return floorWidth(def), errors.Wrap(errors.ErrCodeWindowing, err, "malformed window width %q", widthRaw)
		}
		p = Params{Center: center, Width: width}
	}
	return floorWidth(p), nil
}

func floorWidth(p Params) Params {
	if p.Width < 1 {
		p.Width = 1
	}
	return p
}

// parseFirstValue parses the first element of a possibly multi-valued
// DICOM decimal string such as "40" or "40\80".
func parseFirstValue(raw string) (float64, error) {
	first, _, _ := strings.Cut(raw, `\`)
	return strconv.ParseFloat(strings.TrimSpace(first), 64)
}

// Clip clamps every sample to the window bounds [center-width/2, center+width/2].
func Clip(g Grid, p Params) Grid {
	lower, upper := p.Bounds()
	out := g.clone()
	for i, v := range out.Px {
		switch {
		case v < lower:
			out.Px[i] = lower
		case v > upper:
			out.Px[i] = upper
		}
	}
	return out
}
