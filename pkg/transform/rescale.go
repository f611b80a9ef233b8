package transform

// Rescale applies the linear calibration px*slope + intercept to every sample.
// A nil slope or intercept means the corresponding tag was absent; both absent
// is the identity transform and returns g unchanged. Rescale never fails.
func Rescale(g Grid, slope, intercept *float64) Grid {
	if slope == nil && intercept == nil {
		return g
	}

	m := 1.0
	if slope != nil {
		m = *slope
	}
	b := 0.0
	if intercept != nil {
		b = *intercept
	}

	out := g.clone()
	for i, v := range out.Px {
		out.Px[i] = v*m + b
	}
	return out
}
