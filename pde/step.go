package pde

import (
	"fmt"

	"github.com/katalvlaran/pdegrid/grid"
)

// Step performs one backward time step of
//
//	V_t + a(t,x)·V_xx + b(t,x)·V_x + c(t,x)·V = 0
//
// taking the batched value field from `time` to the earlier `nextTime`
// on grid g.
//
// Pipeline:
//  1. validate inputs (shape, direction, presence);
//  2. strip the two boundary columns to obtain the interior field;
//  3. build a pure EquationFunc that, for any t inside the step,
//     discretizes the PDE (buildStencil) and folds in the boundary
//     conditions (applyBoundaries), yielding dv/dt = A(t)·v + r(t);
//  4. delegate integration across [nextTime, time] to the marcher;
//  5. re-derive the two boundary values at nextTime from the updated
//     interior field and reassemble the full [batch][n] result.
//
// The input field is not mutated; the returned field is freshly
// allocated with the same shape.
//
// Direction: the first time argument is the LATER one. nextTime >= time
// is rejected with ErrTimeDirection — swapping arguments would silently
// invert the meaning of the result otherwise.
//
// Errors: ErrGridNil, ErrGridTooSmall, ErrBoundaryNil, ErrMarcherNil,
// ErrEmptyBatch, ErrShapeMismatch, ErrTimeDirection, and
// ErrBoundaryUnderdetermined (wrapped with the offending edge); marcher
// failures are wrapped and returned as-is for errors.Is matching.
func Step(
	time, nextTime float64,
	g *grid.Grid,
	values [][]float64,
	bc BoundaryPair,
	coeffs Coefficients,
	marcher TimeMarcher,
) ([][]float64, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if g.Len() < 4 {
		return nil, ErrGridTooSmall
	}
	if bc.Lower == nil || bc.Upper == nil {
		return nil, ErrBoundaryNil
	}
	if marcher == nil {
		return nil, ErrMarcherNil
	}
	if len(values) == 0 {
		return nil, ErrEmptyBatch
	}
	n := g.Len()
	for k, row := range values {
		if len(row) != n {
			return nil, fmt.Errorf("pde: value row %d has length %d, want grid length %d: %w",
				k, len(row), n, ErrShapeMismatch)
		}
	}
	if nextTime >= time {
		return nil, fmt.Errorf("pde: from t=%v to t=%v: %w", time, nextTime, ErrTimeDirection)
	}

	batch := len(values)
	m := n - 2
	deltas := g.Deltas() // computed once, captured by the closure below

	interior := make([][]float64, batch)
	for k, row := range values {
		inner := make([]float64, m)
		copy(inner, row[1:n-1])
		interior[k] = inner
	}

	eq := EquationFunc(func(t float64) (Tridiagonal, [][]float64, error) {
		trid, err := buildStencil(t, g, deltas, coeffs, batch)
		if err != nil {
			return Tridiagonal{}, nil, fmt.Errorf("pde: at t=%v: %w", t, err)
		}
		trid, term, err := applyBoundaries(t, g, deltas, bc, trid)
		if err != nil {
			return Tridiagonal{}, nil, fmt.Errorf("pde: at t=%v: %w", t, err)
		}

		return trid, term, nil
	})

	out, err := marcher.MarchBackward(interior, nextTime, time, eq)
	if err != nil {
		return nil, fmt.Errorf("pde: time marching: %w", err)
	}
	if len(out) != batch {
		return nil, fmt.Errorf("pde: marcher returned %d rows, want %d: %w", len(out), batch, ErrShapeMismatch)
	}
	for k, row := range out {
		if len(row) != m {
			return nil, fmt.Errorf("pde: marcher row %d has length %d, want %d: %w",
				k, len(row), m, ErrShapeMismatch)
		}
	}

	full, err := restoreBoundaries(nextTime, g, deltas, bc, out)
	if err != nil {
		return nil, fmt.Errorf("pde: %w", err)
	}

	return full, nil
}
