// Package pde: public contracts of the discretization core — coefficient
// and boundary callbacks, the tridiagonal operator, and the time-marching
// interface consumed (not implemented) by Step.
package pde

import "github.com/katalvlaran/pdegrid/grid"

// CoeffFunc evaluates one PDE coefficient at time t over grid g.
// The result must broadcast over the [batch][grid.Len()] value field
// (see Values). A nil CoeffFunc means the term is absent from the
// equation and contributes exactly zero.
type CoeffFunc func(t float64, g *grid.Grid) Values

// Coefficients bundles the three coefficient functions of
//
//	V_t + a·V_xx + b·V_x + c·V = 0.
//
// Any of them may be nil; nil is equivalent to the zero function.
type Coefficients struct {
	// SecondOrder is a(t,x). For the PDE to be parabolic it must be
	// strictly positive on the domain — a caller precondition that is
	// deliberately not validated here; violating it yields unstable
	// numbers, not an error.
	SecondOrder CoeffFunc

	// FirstOrder is b(t,x).
	FirstOrder CoeffFunc

	// ZerothOrder is c(t,x).
	ZerothOrder CoeffFunc
}

// ConstCoeff returns a CoeffFunc that evaluates to the constant v
// everywhere.
func ConstCoeff(v float64) CoeffFunc {
	return func(float64, *grid.Grid) Values { return Scalar(v) }
}

// Boundary encodes the Robin condition
//
//	alpha·V + beta·V_n = gamma
//
// at one edge, where V_n is the derivative along the OUTWARD normal
// (-d/dx at the lower edge, +d/dx at the upper edge).
//
// Absent Beta is a pure Dirichlet condition, absent Alpha pure Neumann.
// Both absent is invalid and reported as ErrBoundaryUnderdetermined.
// Absent Gamma means a homogeneous condition (gamma = 0).
//
// Alpha, Beta and Gamma broadcast over the batch (Scalar or per-row
// Vector of batch length).
type Boundary struct {
	Alpha Values
	Beta  Values
	Gamma Values
}

// BoundaryFunc evaluates one edge's Robin triple at time t.
// It is called once per discretization instant and once more after the
// external step completes, to restore the boundary values.
type BoundaryFunc func(t float64, g *grid.Grid) Boundary

// BoundaryPair holds the conditions at the two edges of the grid.
type BoundaryPair struct {
	Lower BoundaryFunc // at Min(), outward normal -d/dx
	Upper BoundaryFunc // at Max(), outward normal +d/dx
}

// DirichletValue returns a BoundaryFunc fixing V = value at the edge.
func DirichletValue(value float64) BoundaryFunc {
	return func(float64, *grid.Grid) Boundary {
		return Boundary{Alpha: Scalar(1), Gamma: Scalar(value)}
	}
}

// NeumannValue returns a BoundaryFunc fixing the outward normal
// derivative: V_n = value at the edge.
func NeumannValue(value float64) BoundaryFunc {
	return func(float64, *grid.Grid) Boundary {
		return Boundary{Beta: Scalar(1), Gamma: Scalar(value)}
	}
}

// Tridiagonal holds the three diagonals of the interior operator A in
//
//	dv/dt = A·v + r.
//
// Each slice has shape [batch][m], m = grid.Len()-2, and all three shapes
// are identical. Row i of A couples interior point i to its neighbors:
//
//	(A·v)_i = Lower[i]·v_{i-1} + Diag[i]·v_i + Upper[i]·v_{i+1}
//
// Lower[...][0] and Upper[...][m-1] address points beyond the interior;
// after boundary injection they carry no information and marchers must
// ignore them.
type Tridiagonal struct {
	Diag  [][]float64
	Upper [][]float64
	Lower [][]float64
}

// EquationFunc produces the operator A(t) and inhomogeneous term r(t) of
// the space-discretized system at an arbitrary time inside the step.
// It is a pure function of t; marchers may call it any number of times.
type EquationFunc func(t float64) (Tridiagonal, [][]float64, error)

// TimeMarcher integrates the interior system dv/dt = A(t)·v + r(t)
// backward across one step. Implementations receive the interior field
// (shape [batch][m]), the two times with t1 < t2 (integration runs from
// t2 down to t1), and the equation generator; they return an updated
// interior field of identical shape. The core makes no assumption about
// the marching algorithm beyond this contract.
type TimeMarcher interface {
	MarchBackward(interior [][]float64, t1, t2 float64, eq EquationFunc) ([][]float64, error)
}

// MarchFunc adapts a plain function to the TimeMarcher interface,
// the same way http.HandlerFunc adapts handlers.
type MarchFunc func(interior [][]float64, t1, t2 float64, eq EquationFunc) ([][]float64, error)

// MarchBackward implements TimeMarcher by calling f.
func (f MarchFunc) MarchBackward(interior [][]float64, t1, t2 float64, eq EquationFunc) ([][]float64, error) {
	return f(interior, t1, t2, eq)
}
