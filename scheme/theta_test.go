package scheme_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pdegrid/grid"
	"github.com/katalvlaran/pdegrid/pde"
	"github.com/katalvlaran/pdegrid/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constEq returns an EquationFunc with a time-independent operator and term.
func constEq(a pde.Tridiagonal, r [][]float64) pde.EquationFunc {
	return func(float64) (pde.Tridiagonal, [][]float64, error) {
		return a, r, nil
	}
}

// zeroOperator builds an all-zero [batch][m] operator.
func zeroOperator(batch, m int) pde.Tridiagonal {
	rows := func() [][]float64 {
		r := make([][]float64, batch)
		for k := range r {
			r[k] = make([]float64, m)
		}

		return r
	}

	return pde.Tridiagonal{Diag: rows(), Upper: rows(), Lower: rows()}
}

// TestTheta_WeightValidation verifies constructor bounds.
func TestTheta_WeightValidation(t *testing.T) {
	for _, w := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := scheme.Theta(w)
		assert.ErrorIs(t, err, scheme.ErrBadTheta, "weight %v", w)
	}

	s, err := scheme.Theta(0.25)
	require.NoError(t, err)
	assert.Equal(t, 0.25, s.Weight())

	assert.Equal(t, 0.0, scheme.Explicit().Weight())
	assert.Equal(t, 1.0, scheme.Implicit().Weight())
	assert.Equal(t, 0.5, scheme.CrankNicolson().Weight())
}

// TestMarchBackward_BadInputs covers interval and emptiness checks.
func TestMarchBackward_BadInputs(t *testing.T) {
	eq := constEq(zeroOperator(1, 3), [][]float64{{0, 0, 0}})
	field := [][]float64{{1, 2, 3}}

	_, err := scheme.CrankNicolson().MarchBackward(field, 1.0, 1.0, eq)
	assert.ErrorIs(t, err, scheme.ErrBadStep, "zero interval")

	_, err = scheme.CrankNicolson().MarchBackward(field, 2.0, 1.0, eq)
	assert.ErrorIs(t, err, scheme.ErrBadStep, "inverted interval")

	_, err = scheme.CrankNicolson().MarchBackward(nil, 0, 1, eq)
	assert.ErrorIs(t, err, scheme.ErrEmptyField)

	badEq := constEq(zeroOperator(2, 3), [][]float64{{0, 0, 0}, {0, 0, 0}})
	_, err = scheme.CrankNicolson().MarchBackward(field, 0, 1, badEq)
	assert.ErrorIs(t, err, scheme.ErrShapeMismatch, "operator batch mismatch")
}

// TestMarchBackward_ConstantInhomogeneous: with A = 0 and constant r,
// every theta weight must give exactly v(t1) = v(t2) - dt*r.
func TestMarchBackward_ConstantInhomogeneous(t *testing.T) {
	const dt = 0.25
	a := zeroOperator(2, 3)
	r := [][]float64{{2, 2, 2}, {-1, -1, -1}}
	field := [][]float64{{1, 2, 3}, {4, 5, 6}}

	for _, s := range []*scheme.ThetaScheme{scheme.Explicit(), scheme.CrankNicolson(), scheme.Implicit()} {
		out, err := s.MarchBackward(field, 1.0-dt, 1.0, constEq(a, r))
		require.NoError(t, err, "theta=%v", s.Weight())
		assert.InDeltaSlice(t, []float64{0.5, 1.5, 2.5}, out[0], 1e-14, "theta=%v row 0", s.Weight())
		assert.InDeltaSlice(t, []float64{4.25, 5.25, 6.25}, out[1], 1e-14, "theta=%v row 1", s.Weight())
	}
}

// TestMarchBackward_SingleModeFactor: for the scalar system dv/dt = λv
// one step must multiply v by (1 - dt(1-θ)λ)/(1 + dtθλ) exactly.
func TestMarchBackward_SingleModeFactor(t *testing.T) {
	const (
		lambda = 3.0
		dt     = 0.1
	)
	a := zeroOperator(1, 1)
	a.Diag[0][0] = lambda
	r := [][]float64{{0}}
	field := [][]float64{{1}}

	for _, s := range []*scheme.ThetaScheme{scheme.Explicit(), scheme.CrankNicolson(), scheme.Implicit()} {
		theta := s.Weight()
		want := (1 - dt*(1-theta)*lambda) / (1 + dt*theta*lambda)
		out, err := s.MarchBackward(field, 0.9, 1.0, constEq(a, r))
		require.NoError(t, err, "theta=%v", theta)
		assert.InDelta(t, want, out[0][0], 1e-14, "theta=%v", theta)
	}
}

// TestMarchBackward_LaplacianEigenmode: the discrete sine mode is an
// exact eigenvector of the constant-coefficient interior operator, so a
// Crank-Nicolson step must scale it by the exact rational factor.
func TestMarchBackward_LaplacianEigenmode(t *testing.T) {
	const (
		n  = 12 // grid points; m = 10 interior
		dt = 1e-3
	)
	h := 1.0 / float64(n-1)
	m := n - 2
	lambda := 2 * (1 - math.Cos(math.Pi*h)) / (h * h)

	a := zeroOperator(1, m)
	for i := 0; i < m; i++ {
		a.Diag[0][i] = 2 / (h * h)
		a.Upper[0][i] = -1 / (h * h)
		a.Lower[0][i] = -1 / (h * h)
	}
	r := [][]float64{make([]float64, m)}

	field := [][]float64{make([]float64, m)}
	for i := 0; i < m; i++ {
		field[0][i] = math.Sin(math.Pi * float64(i+1) * h)
	}

	out, err := scheme.CrankNicolson().MarchBackward(field, 1.0-dt, 1.0, constEq(a, r))
	require.NoError(t, err)

	factor := (1 - dt/2*lambda) / (1 + dt/2*lambda)
	for i := 0; i < m; i++ {
		assert.InDelta(t, factor*field[0][i], out[0][i], 1e-10, "point %d", i)
	}
}

// TestMarchBackward_EqErrorPropagates: generator failures must surface.
func TestMarchBackward_EqErrorPropagates(t *testing.T) {
	eq := pde.EquationFunc(func(float64) (pde.Tridiagonal, [][]float64, error) {
		return pde.Tridiagonal{}, nil, assert.AnError
	})
	_, err := scheme.Implicit().MarchBackward([][]float64{{1, 2}}, 0, 1, eq)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestStep_HeatModeDecay drives the full pde.Step pipeline: backward
// heat equation V_t + V_xx = 0 with zero Dirichlet edges and a sine
// initial mode. The grid sine vector is an exact discrete eigenmode, so
// a Crank-Nicolson step scales the interior by the exact rational factor
// and the boundaries stay at zero.
func TestStep_HeatModeDecay(t *testing.T) {
	const (
		n  = 41
		dt = 1e-3
		t0 = 1.0
	)
	g, err := grid.Uniform(0, 1, n)
	require.NoError(t, err)
	h := 1.0 / float64(n-1)
	lambda := 2 * (1 - math.Cos(math.Pi*h)) / (h * h)

	xs := g.Points()
	values := [][]float64{make([]float64, n)}
	for i, x := range xs {
		values[0][i] = math.Sin(math.Pi * x)
	}
	values[0][0], values[0][n-1] = 0, 0

	coeffs := pde.Coefficients{SecondOrder: pde.ConstCoeff(1)}
	bc := pde.BoundaryPair{Lower: pde.DirichletValue(0), Upper: pde.DirichletValue(0)}

	out, err := pde.Step(t0, t0-dt, g, values, bc, coeffs, scheme.CrankNicolson())
	require.NoError(t, err)

	factor := (1 - dt/2*lambda) / (1 + dt/2*lambda)
	assert.InDelta(t, 0, out[0][0], 1e-14, "lower boundary pinned")
	assert.InDelta(t, 0, out[0][n-1], 1e-14, "upper boundary pinned")
	for i := 1; i < n-1; i++ {
		assert.InDelta(t, factor*values[0][i], out[0][i], 1e-9, "interior point %d", i)
	}

	// The discrete factor itself must track the continuous decay
	// exp(-lambda*dt) to the scheme's second-order accuracy.
	assert.InDelta(t, math.Exp(-lambda*dt), factor, 1e-6)
}

// TestStep_NeumannConservesConstant: zero-flux edges and a constant field
// are a steady state of the discretized system on any grid; a full
// implicit step must return the field bit-for-bit (up to solver rounding).
func TestStep_NeumannConservesConstant(t *testing.T) {
	g, err := grid.New([]float64{0, 0.1, 0.3, 0.6, 1.0})
	require.NoError(t, err)

	const level = 2.5
	values := [][]float64{{level, level, level, level, level}}
	coeffs := pde.Coefficients{SecondOrder: pde.ConstCoeff(0.7)}
	bc := pde.BoundaryPair{Lower: pde.NeumannValue(0), Upper: pde.NeumannValue(0)}

	out, err := pde.Step(1.0, 0.9, g, values, bc, coeffs, scheme.Implicit())
	require.NoError(t, err)
	for i := range out[0] {
		assert.InDelta(t, level, out[0][i], 1e-12, "point %d", i)
	}
}

// TestStep_ExplicitImplicitBracketCN: for a decaying mode the explicit
// and implicit factors bracket the Crank-Nicolson factor.
func TestStep_ExplicitImplicitBracketCN(t *testing.T) {
	const (
		n  = 21
		dt = 1e-4
		t0 = 0.5
	)
	g, err := grid.Uniform(0, 1, n)
	require.NoError(t, err)
	xs := g.Points()
	values := [][]float64{make([]float64, n)}
	for i, x := range xs {
		values[0][i] = math.Sin(math.Pi * x)
	}
	values[0][0], values[0][n-1] = 0, 0

	coeffs := pde.Coefficients{SecondOrder: pde.ConstCoeff(1)}
	bc := pde.BoundaryPair{Lower: pde.DirichletValue(0), Upper: pde.DirichletValue(0)}

	mid := (n - 1) / 2 // peak of the sine mode
	run := func(s *scheme.ThetaScheme) float64 {
		out, err := pde.Step(t0, t0-dt, g, values, bc, coeffs, s)
		require.NoError(t, err)

		return out[0][mid]
	}

	ex := run(scheme.Explicit())
	cn := run(scheme.CrankNicolson())
	im := run(scheme.Implicit())
	assert.Less(t, ex, cn, "explicit decays hardest for a stable dt")
	assert.Less(t, cn, im, "implicit decays least")
	assert.Less(t, im, values[0][mid], "everything decays")
}
