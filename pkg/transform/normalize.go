package transform

// Normalize maps a float buffer linearly onto the 8-bit range.
//
// A uniform buffer (max == min) yields an all-zero output of identical shape;
// this is a degenerate input, not an error. Otherwise every sample is scaled
// with (v-min)*255/(max-min), clamped to [0,255], and truncated to uint8. The
// truncation deliberately follows Go's float-to-integer conversion; no
// round-to-nearest is applied at .5 boundaries.
//
// Normalize is idempotent: re-applying it to its own output is a no-op.
func Normalize(g Grid) []uint8 {
	out := make([]uint8, len(g.Px))
	if len(g.Px) == 0 {
		return out
	}

	min, max := g.Px[0], g.Px[0]
	for _, v := range g.Px[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if max == min {
		return out
	}

	scale := 255.0 / (max - min)
	for i, v := range g.Px {
		n := (v - min) * scale
		if n < 0 {
			n = 0
		} else if n > 255 {
			n = 255
		}
		out[i] = uint8(n)
	}
	return out
}
