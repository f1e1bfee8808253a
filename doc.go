// Package pdegrid is a toolkit for stepping one-dimensional parabolic
// partial differential equations backward in time on non-uniform grids.
//
// 🚀 What is pdegrid?
//
//	A small, pure-Go finite-difference stack for equations of the form
//
//		V_t + a(t,x)·V_xx + b(t,x)·V_x + c(t,x)·V = 0
//
//	solved backward from a terminal condition — the shape of problems
//	found in option pricing, heat conduction with a known end state, and
//	smoothing/deconvolution tasks.
//
// ✨ What's inside?
//
//   - grid/   — validated, strictly increasing 1-D coordinate grids with
//     cached spacings (uniform or fully non-uniform)
//   - pde/    — the spatial discretization core: second-order stencils on
//     non-uniform grids, Robin/Neumann/Dirichlet boundaries folded into a
//     batched tridiagonal operator, and the backward step driver
//   - scheme/ — weighted (theta) time-marching: explicit Euler, implicit
//     Euler and Crank–Nicolson, with gonum-backed tridiagonal solves
//
// ⚙️ A step in one line:
//
//	updated, err := pde.Step(t, tNext, g, values, bc, coeffs, scheme.CrankNicolson())
//
// Everything is stateless and batch-aware: several independent solutions
// sharing one grid are stepped together, and nothing survives a call.
//
// See examples/ for full heat-decay and Black–Scholes walkthroughs.
package pdegrid
