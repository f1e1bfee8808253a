package scheme

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pdegrid/pde"
)

// ThetaScheme is a one-step weighted marcher for dv/dt = A(t)·v + r(t),
// stepping backward from t2 to t1. The zero value is the explicit scheme;
// prefer the named constructors.
type ThetaScheme struct {
	weight float64
}

// Theta returns a scheme with the given implicitness weight in [0, 1].
func Theta(weight float64) (*ThetaScheme, error) {
	if math.IsNaN(weight) || weight < 0 || weight > 1 {
		return nil, ErrBadTheta
	}

	return &ThetaScheme{weight: weight}, nil
}

// Explicit returns the explicit Euler scheme (θ = 0).
func Explicit() *ThetaScheme { return &ThetaScheme{weight: 0} }

// Implicit returns the implicit Euler scheme (θ = 1).
func Implicit() *ThetaScheme { return &ThetaScheme{weight: 1} }

// CrankNicolson returns the trapezoidal scheme (θ = 0.5).
func CrankNicolson() *ThetaScheme { return &ThetaScheme{weight: 0.5} }

// Weight reports the implicitness weight θ.
func (s *ThetaScheme) Weight() float64 { return s.weight }

// MarchBackward implements pde.TimeMarcher.
//
// Per batch row it forms the explicit right-hand side with the operator
// evaluated at t2, then (for θ > 0) solves the tridiagonal system
// (I + dt·θ·A(t1))·v = rhs via gonum's mat.Tridiag. The input field is
// not mutated.
func (s *ThetaScheme) MarchBackward(interior [][]float64, t1, t2 float64, eq pde.EquationFunc) ([][]float64, error) {
	if len(interior) == 0 || len(interior[0]) == 0 {
		return nil, ErrEmptyField
	}
	if t1 >= t2 {
		return nil, fmt.Errorf("scheme: from t2=%v to t1=%v: %w", t2, t1, ErrBadStep)
	}

	batch := len(interior)
	m := len(interior[0])
	dt := t2 - t1
	theta := s.weight
	implicit := theta > 0

	a2, r2, err := eq(t2)
	if err != nil {
		return nil, err
	}
	if err = checkShape(a2, r2, batch, m); err != nil {
		return nil, err
	}

	var a1 pde.Tridiagonal
	var r1 [][]float64
	if implicit {
		a1, r1, err = eq(t1)
		if err != nil {
			return nil, err
		}
		if err = checkShape(a1, r1, batch, m); err != nil {
			return nil, err
		}
	}

	out := make([][]float64, batch)
	rhs := make([]float64, m)
	av := make([]float64, m)
	var d, dl, du []float64
	if implicit {
		d = make([]float64, m)
		dl = make([]float64, m-1)
		du = make([]float64, m-1)
	}

	for k := 0; k < batch; k++ {
		v := interior[k]

		// rhs = v − dt·(1−θ)·(A(t2)·v + r(t2)) − dt·θ·r(t1)
		mulTridiagRow(a2, k, v, av)
		copy(rhs, v)
		floats.AddScaled(rhs, -dt*(1-theta), av)
		floats.AddScaled(rhs, -dt*(1-theta), r2[k])
		if implicit {
			floats.AddScaled(rhs, -dt*theta, r1[k])
		}

		res := make([]float64, m)
		if !implicit {
			copy(res, rhs)
			out[k] = res

			continue
		}

		// (I + dt·θ·A(t1))·res = rhs
		for i := 0; i < m; i++ {
			d[i] = 1 + dt*theta*a1.Diag[k][i]
		}
		for i := 0; i < m-1; i++ {
			du[i] = dt * theta * a1.Upper[k][i]
			dl[i] = dt * theta * a1.Lower[k][i+1]
		}
		tri := mat.NewTridiag(m, dl, d, du)
		dst := mat.NewVecDense(m, res)
		if err = tri.SolveVecTo(dst, false, mat.NewVecDense(m, rhs)); err != nil {
			return nil, fmt.Errorf("scheme: implicit solve for batch row %d: %w", k, err)
		}
		out[k] = res
	}

	return out, nil
}

// mulTridiagRow computes dst = A·v for batch row k. Entries Lower[k][0]
// and Upper[k][m-1] address points outside the interior and are ignored.
func mulTridiagRow(a pde.Tridiagonal, k int, v, dst []float64) {
	m := len(v)
	for i := 0; i < m; i++ {
		sum := a.Diag[k][i] * v[i]
		if i > 0 {
			sum += a.Lower[k][i] * v[i-1]
		}
		if i < m-1 {
			sum += a.Upper[k][i] * v[i+1]
		}
		dst[i] = sum
	}
}

// checkShape validates equation parameters against the interior field.
func checkShape(a pde.Tridiagonal, r [][]float64, batch, m int) error {
	if len(a.Diag) != batch || len(a.Upper) != batch || len(a.Lower) != batch || len(r) != batch {
		return fmt.Errorf("scheme: equation parameters have wrong batch size: %w", ErrShapeMismatch)
	}
	for k := 0; k < batch; k++ {
		if len(a.Diag[k]) != m || len(a.Upper[k]) != m || len(a.Lower[k]) != m || len(r[k]) != m {
			return fmt.Errorf("scheme: equation parameters row %d has wrong length: %w", k, ErrShapeMismatch)
		}
	}

	return nil
}
