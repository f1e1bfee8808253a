// Package scheme provides weighted (theta) time-marching schemes for the
// space-discretized systems produced by the pde package.
//
// 🚀 What does it solve?
//
//	dv/dt = A(t)·v + r(t)
//
//	integrated BACKWARD across one step [t1, t2] (t1 < t2), where A is
//	the batched tridiagonal operator built by pde and r the
//	inhomogeneous boundary term.
//
// A single ThetaScheme step computes v(t1) from v(t2) via
//
//	(I + dt·θ·A(t1))·v(t1) =
//	    (I − dt·(1−θ)·A(t2))·v(t2) − dt·[(1−θ)·r(t2) + θ·r(t1)]
//
// with dt = t2 − t1. The family covers the classic trio:
//   - θ = 0   — explicit Euler (no linear solve, conditionally stable)
//   - θ = 1   — implicit Euler (unconditionally stable, first order)
//   - θ = 0.5 — Crank–Nicolson (unconditionally stable, second order)
//
// Implicit solves run through gonum's tridiagonal factorization
// (mat.Tridiag), one solve per batch row; explicit sweeps use
// gonum/floats.
//
// ⚙️ Usage:
//
//	next, err := pde.Step(t, tNext, g, values, bc, coeffs, scheme.CrankNicolson())
//
// ThetaScheme is stateless and safe for concurrent use; steps for
// different batches may run in parallel without coordination.
package scheme
