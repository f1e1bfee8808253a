package pde

import (
	"fmt"

	"github.com/katalvlaran/pdegrid/grid"
)

// buildStencil computes the interior tridiagonal coefficients of the
// space-discretized PDE on a non-uniform grid, by the method of
// undetermined coefficients (second-order consistent).
//
// Per interior point with backward spacing h0, forward spacing h1 and
// s = h0 + h1:
//
//	upper = -(b/s + 2a/(s·h1))
//	lower =   b/s - 2a/(s·h0)
//	diag  = -c - upper - lower
//
// which on a uniform grid of spacing h reduces to the standard central
// stencil upper = -(b/2h + a/h²), lower = b/2h - a/h², diag = -c + 2a/h².
//
// Coefficients are evaluated over the full grid and trimmed to the
// interior: boundary points do not satisfy the PDE, their rows come from
// the boundary conditions instead. Absent coefficients contribute zero.
func buildStencil(t float64, g *grid.Grid, deltas []float64, coeffs Coefficients, batch int) (Tridiagonal, error) {
	n := g.Len()
	m := n - 2

	a, err := evalCoeff(coeffs.SecondOrder, t, g, batch, n)
	if err != nil {
		return Tridiagonal{}, fmt.Errorf("second-order coefficient: %w", err)
	}
	b, err := evalCoeff(coeffs.FirstOrder, t, g, batch, n)
	if err != nil {
		return Tridiagonal{}, fmt.Errorf("first-order coefficient: %w", err)
	}
	c, err := evalCoeff(coeffs.ZerothOrder, t, g, batch, n)
	if err != nil {
		return Tridiagonal{}, fmt.Errorf("zeroth-order coefficient: %w", err)
	}

	trid := Tridiagonal{
		Diag:  makeRows(batch, m),
		Upper: makeRows(batch, m),
		Lower: makeRows(batch, m),
	}
	for k := 0; k < batch; k++ {
		for i := 0; i < m; i++ {
			h0, h1 := deltas[i], deltas[i+1]
			s := h0 + h1
			// Interior point i sits at grid index i+1.
			dxx := 2 * a(k, i+1) / s
			dx := b(k, i+1) / s
			up := -(dx + dxx/h1)
			lo := dx - dxx/h0
			trid.Upper[k][i] = up
			trid.Lower[k][i] = lo
			trid.Diag[k][i] = -c(k, i+1) - up - lo
		}
	}

	return trid, nil
}

// evalCoeff resolves an optional coefficient function into a checked
// point accessor; a nil function is the zero coefficient.
func evalCoeff(fn CoeffFunc, t float64, g *grid.Grid, batch, n int) (func(k, i int) float64, error) {
	if fn == nil {
		return func(int, int) float64 { return 0 }, nil
	}

	return fn(t, g).gridField(batch, n)
}

// makeRows allocates a zeroed [batch][m] slice-of-slices.
func makeRows(batch, m int) [][]float64 {
	rows := make([][]float64, batch)
	for k := range rows {
		rows[k] = make([]float64, m)
	}

	return rows
}
