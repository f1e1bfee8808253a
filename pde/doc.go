// Package pde discretizes one-dimensional linear parabolic PDEs in space
// and drives a single backward time step.
//
// 🚀 The problem
//
//	V_t + a(t,x)·V_xx + b(t,x)·V_x + c(t,x)·V = 0
//
//	on a strictly increasing (possibly non-uniform) grid, stepped
//	backward from a known later-time field — the classic setting of
//	terminal-value problems such as option pricing.
//
// The package converts the continuous equation plus general Robin
// boundary conditions alpha·V + beta·V_n = gamma (V_n is the outward
// normal derivative) into a discrete linear ODE system over the interior
// grid points,
//
//	dv/dt = A(t)·v + r(t),
//
// where A is tridiagonal. Integration of that system across the step is
// delegated to a TimeMarcher (see the scheme package for ready-made
// theta schemes); afterwards the two boundary values are reconstructed
// from the updated interior field.
//
// ✨ Key features:
//   - second-order-consistent stencils on non-uniform grids
//     (method of undetermined coefficients)
//   - Dirichlet, Neumann and full Robin boundaries, with an algebraic
//     fast path when both edges are pure Dirichlet
//   - batched fields [K][N]: K independent solutions sharing one grid
//     are stepped together
//   - explicit, checked broadcasting of coefficient outputs
//     (Scalar / Vector / Batch), never a silent shape coercion
//   - fully stateless: every call builds everything fresh and discards it
//
// ⚙️ Usage:
//
//	g, _ := grid.Uniform(0, 1, 101)
//	coeffs := pde.Coefficients{SecondOrder: pde.ConstCoeff(1)}
//	bc := pde.BoundaryPair{
//	    Lower: pde.DirichletValue(0),
//	    Upper: pde.DirichletValue(0),
//	}
//	next, err := pde.Step(t, tNext, g, values, bc, coeffs, marcher)
//
// ⏱ The backward convention: the first time argument is the LATER one and
// the step moves to the earlier nextTime. Swapped arguments are rejected
// with ErrTimeDirection rather than silently integrating forward.
//
// Errors are package-prefixed sentinels ("pde: ...") matched with
// errors.Is; shape problems in user callbacks surface as wrapped
// ErrShapeMismatch. Positivity of the second-order coefficient is a
// caller precondition and is NOT validated here: violating it yields
// unstable numbers, not an error.
package pde
