package pde

import (
	"fmt"

	"github.com/katalvlaran/pdegrid/grid"
)

// edgeRule is the discretized form of one edge's boundary condition:
//
//	v0 = Xi1·v1 + Xi2·v2 + Eta
//
// where v0 is the boundary value and v1, v2 the two nearest interior
// values. One entry per batch row.
type edgeRule struct {
	Xi1, Xi2, Eta []float64
}

// discretizeBoundary converts a Robin triple alpha·V + beta·V_n = gamma
// into an edgeRule, to second-order accuracy, via a one-sided quadratic
// fit consistent with the normal-derivative condition.
//
// dx0 is the spacing from the boundary to the nearest interior point,
// dx1 the spacing from that point to the next one. The algebra is
// identical at both edges because V_n is taken along the outward normal.
//
// Dirichlet shortcut (beta absent): v0 = gamma/alpha, independent of the
// interior. Both alpha and beta absent is a configuration error.
func discretizeBoundary(dx0, dx1 float64, b Boundary, batch int) (edgeRule, error) {
	if b.Alpha.IsAbsent() && b.Beta.IsAbsent() {
		return edgeRule{}, ErrBoundaryUnderdetermined
	}
	gamma, err := b.Gamma.edgeField(batch)
	if err != nil {
		return edgeRule{}, fmt.Errorf("gamma: %w", err)
	}

	r := edgeRule{
		Xi1: make([]float64, batch),
		Xi2: make([]float64, batch),
		Eta: make([]float64, batch),
	}

	if b.Beta.IsAbsent() {
		alpha, aErr := b.Alpha.edgeField(batch)
		if aErr != nil {
			return edgeRule{}, fmt.Errorf("alpha: %w", aErr)
		}
		for k := 0; k < batch; k++ {
			r.Eta[k] = gamma(k) / alpha(k)
		}

		return r, nil
	}

	beta, err := b.Beta.edgeField(batch)
	if err != nil {
		return edgeRule{}, fmt.Errorf("beta: %w", err)
	}
	alpha, err := b.Alpha.edgeField(batch)
	if err != nil {
		return edgeRule{}, fmt.Errorf("alpha: %w", err)
	}
	hasAlpha := !b.Alpha.IsAbsent()

	sum := dx0 + dx1
	for k := 0; k < batch; k++ {
		bk := beta(k)
		denom := bk * dx1 * (2*dx0 + dx1)
		if hasAlpha {
			denom += alpha(k) * dx0 * dx1 * sum
		}
		r.Xi1[k] = bk * sum * sum / denom
		r.Xi2[k] = -bk * dx0 * dx0 / denom
		r.Eta[k] = gamma(k) * dx0 * dx1 * sum / denom
	}

	return r, nil
}

// edgeRules evaluates and discretizes both boundary conditions at time t.
// The upper edge mirrors the last two spacings.
func edgeRules(t float64, g *grid.Grid, deltas []float64, bc BoundaryPair, batch int) (lo, up edgeRule, err error) {
	nd := len(deltas)
	lo, err = discretizeBoundary(deltas[0], deltas[1], bc.Lower(t, g), batch)
	if err != nil {
		return edgeRule{}, edgeRule{}, fmt.Errorf("lower boundary: %w", err)
	}
	up, err = discretizeBoundary(deltas[nd-1], deltas[nd-2], bc.Upper(t, g), batch)
	if err != nil {
		return edgeRule{}, edgeRule{}, fmt.Errorf("upper boundary: %w", err)
	}

	return lo, up, nil
}

// restoreBoundaries re-derives the two boundary values from the updated
// interior field at the new time and reassembles the full [batch][n] field.
func restoreBoundaries(t float64, g *grid.Grid, deltas []float64, bc BoundaryPair, interior [][]float64) ([][]float64, error) {
	batch := len(interior)
	m := len(interior[0])

	lo, up, err := edgeRules(t, g, deltas, bc, batch)
	if err != nil {
		return nil, err
	}

	full := make([][]float64, batch)
	for k, inner := range interior {
		row := make([]float64, m+2)
		row[0] = lo.Xi1[k]*inner[0] + lo.Xi2[k]*inner[1] + lo.Eta[k]
		copy(row[1:m+1], inner)
		row[m+1] = up.Xi1[k]*inner[m-1] + up.Xi2[k]*inner[m-2] + up.Eta[k]
		full[k] = row
	}

	return full, nil
}
