package pde

import (
	"fmt"

	"github.com/katalvlaran/pdegrid/grid"
)

// applyBoundaries folds the two edge conditions into the interior
// operator, producing the final (A, r) pair handed to time marching.
//
// Without boundaries the discretized system is dv/dt = A·v where row 0
// and row m-1 of A reference the boundary values v_lo, v_up. Expressing
// those through the edge rules (v0 = xi1·v1 + xi2·v2 + eta) corrects the
// first/last rows and introduces the inhomogeneous term r.
//
// Fast path: with pure Dirichlet conditions at BOTH edges the boundary
// values are fixed numbers, so A is untouched and only r picks up
// lower[0]·gamma/alpha and upper[m-1]·gamma/alpha at its ends.
func applyBoundaries(t float64, g *grid.Grid, deltas []float64, bc BoundaryPair, trid Tridiagonal) (Tridiagonal, [][]float64, error) {
	batch := len(trid.Diag)
	m := len(trid.Diag[0])

	lower := bc.Lower(t, g)
	upper := bc.Upper(t, g)
	if lower.Alpha.IsAbsent() && lower.Beta.IsAbsent() {
		return Tridiagonal{}, nil, fmt.Errorf("lower boundary: %w", ErrBoundaryUnderdetermined)
	}
	if upper.Alpha.IsAbsent() && upper.Beta.IsAbsent() {
		return Tridiagonal{}, nil, fmt.Errorf("upper boundary: %w", ErrBoundaryUnderdetermined)
	}

	term := makeRows(batch, m)
	nd := len(deltas)

	if lower.Beta.IsAbsent() && upper.Beta.IsAbsent() {
		lo, err := discretizeBoundary(deltas[0], deltas[1], lower, batch)
		if err != nil {
			return Tridiagonal{}, nil, fmt.Errorf("lower boundary: %w", err)
		}
		up, err := discretizeBoundary(deltas[nd-1], deltas[nd-2], upper, batch)
		if err != nil {
			return Tridiagonal{}, nil, fmt.Errorf("upper boundary: %w", err)
		}
		// Dirichlet eta is gamma/alpha; xi1 = xi2 = 0.
		for k := 0; k < batch; k++ {
			term[k][0] = trid.Lower[k][0] * lo.Eta[k]
			term[k][m-1] += trid.Upper[k][m-1] * up.Eta[k]
		}

		return trid, term, nil
	}

	lo, err := discretizeBoundary(deltas[0], deltas[1], lower, batch)
	if err != nil {
		return Tridiagonal{}, nil, fmt.Errorf("lower boundary: %w", err)
	}
	up, err := discretizeBoundary(deltas[nd-1], deltas[nd-2], upper, batch)
	if err != nil {
		return Tridiagonal{}, nil, fmt.Errorf("upper boundary: %w", err)
	}

	for k := 0; k < batch; k++ {
		w := trid.Lower[k][0]
		trid.Diag[k][0] += w * lo.Xi1[k]
		trid.Upper[k][0] += w * lo.Xi2[k]
		term[k][0] = w * lo.Eta[k]

		w = trid.Upper[k][m-1]
		trid.Diag[k][m-1] += w * up.Xi1[k]
		trid.Lower[k][m-1] += w * up.Xi2[k]
		term[k][m-1] += w * up.Eta[k]
	}

	return trid, term, nil
}
