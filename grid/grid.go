package grid

import "math"

// MinPoints is the smallest number of coordinates a Grid accepts.
// Two points define a single spacing; discretization layers may demand more.
const MinPoints = 2

// Grid is an immutable, strictly increasing 1-D coordinate grid.
// It is safe for concurrent use: nothing mutates after construction.
type Grid struct {
	points []float64 // strictly increasing coordinates, len >= MinPoints
	deltas []float64 // deltas[i] = points[i+1] - points[i], len = len(points)-1
}

// New builds a Grid from the given coordinates.
// The input is copied; the caller keeps ownership of its slice.
//
// Returns ErrTooFewPoints, ErrNonFinite or ErrNotIncreasing on invalid input.
func New(points []float64) (*Grid, error) {
	if len(points) < MinPoints {
		return nil, ErrTooFewPoints
	}
	ps := make([]float64, len(points))
	copy(ps, points)
	for i, p := range ps {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, ErrNonFinite
		}
		if i > 0 && p <= ps[i-1] {
			return nil, ErrNotIncreasing
		}
	}
	ds := make([]float64, len(ps)-1)
	for i := range ds {
		ds[i] = ps[i+1] - ps[i]
	}

	return &Grid{points: ps, deltas: ds}, nil
}

// Uniform builds a Grid of n equally spaced points on [lo, hi].
// The last point is pinned to hi exactly, so accumulated rounding in the
// step arithmetic cannot shift the right boundary.
//
// Returns ErrTooFewPoints when n < MinPoints, ErrNonFinite for non-finite
// bounds, and ErrBadInterval when hi <= lo.
func Uniform(lo, hi float64, n int) (*Grid, error) {
	if n < MinPoints {
		return nil, ErrTooFewPoints
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return nil, ErrNonFinite
	}
	if hi <= lo {
		return nil, ErrBadInterval
	}
	step := (hi - lo) / float64(n-1)
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = lo + float64(i)*step
	}
	pts[n-1] = hi

	return New(pts)
}

// Len returns the number of grid points.
func (g *Grid) Len() int { return len(g.points) }

// Min returns the first (smallest) coordinate.
func (g *Grid) Min() float64 { return g.points[0] }

// Max returns the last (largest) coordinate.
func (g *Grid) Max() float64 { return g.points[len(g.points)-1] }

// At returns the i-th coordinate, or ErrIndexOutOfRange.
func (g *Grid) At(i int) (float64, error) {
	if i < 0 || i >= len(g.points) {
		return 0, ErrIndexOutOfRange
	}

	return g.points[i], nil
}

// Points returns a copy of the coordinates.
func (g *Grid) Points() []float64 {
	ps := make([]float64, len(g.points))
	copy(ps, g.points)

	return ps
}

// Deltas returns a copy of the consecutive spacings (length Len()-1).
func (g *Grid) Deltas() []float64 {
	ds := make([]float64, len(g.deltas))
	copy(ds, g.deltas)

	return ds
}
