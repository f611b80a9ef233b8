// Package transform implements the numeric pixel pipeline: linear rescale,
// intensity windowing, and 8-bit normalization.
//
// All stages operate on a Grid of float64 samples and preserve its shape.
// The stages are deliberately small pure functions so each one can be tested
// against known buffers without touching any DICOM input.
package transform

// Grid is a fixed-shape 2D buffer of intensity samples stored row-major.
// The shape never changes through any transform stage.
type Grid struct {
	Rows, Cols int
	Px         []float64
}

// NewGrid creates a grid of the given shape backed by px.
// The slice length must be rows*cols; this is the caller's contract.
func NewGrid(rows, cols int, px []float64) Grid {
	return Grid{Rows: rows, Cols: cols, Px: px}
}

// clone returns a copy of g with its own backing slice.
func (g Grid) clone() Grid {
	out := Grid{Rows: g.Rows, Cols: g.Cols, Px: make([]float64, len(g.Px))}
	copy(out.Px, g.Px)
	return out
}
