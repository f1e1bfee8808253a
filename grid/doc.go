// Package grid provides validated one-dimensional coordinate grids for
// finite-difference discretization.
//
// 🚀 What is a Grid?
//
//	An immutable, strictly increasing sequence of real coordinates
//	x_0 < x_1 < ... < x_{N-1}, together with its N-1 consecutive
//	spacings (deltas), computed once at construction. Grids may be
//	uniform or arbitrarily graded — clustering points where a solution
//	has structure is the whole point of non-uniform stencils.
//
// ✨ Key properties:
//   - construction validates everything up front (length, monotonicity,
//     finiteness) and returns sentinel errors matched via errors.Is
//   - accessors hand out defensive copies; a Grid never mutates after New
//   - Uniform(lo, hi, n) pins the last point to hi exactly, so rounding
//     drift never produces an off-grid right boundary
//
// ⚙️ Usage:
//
//	g, err := grid.Uniform(0, 1, 101)
//	if err != nil {
//	    // handle grid.ErrTooFewPoints / grid.ErrBadInterval
//	}
//	xs := g.Points() // copy of the coordinates
//	hs := g.Deltas() // copy of the spacings
//
// The pde package consumes Grids; nothing here depends on the PDE layer.
package grid
