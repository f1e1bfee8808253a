package pde_test

import (
	"testing"

	"github.com/katalvlaran/pdegrid/grid"
	"github.com/katalvlaran/pdegrid/pde"
)

// benchmarkStep runs Step with a single-evaluation marcher, isolating the
// cost of discretization (stencil + boundary folding + restore) from any
// particular time-marching algorithm.
func benchmarkStep(b *testing.B, n, batch int, bc pde.BoundaryPair) {
	g, err := grid.Uniform(0, 1, n)
	if err != nil {
		b.Fatalf("grid: %v", err)
	}
	values := make([][]float64, batch)
	for k := range values {
		values[k] = make([]float64, n)
		for i := range values[k] {
			values[k][i] = float64(i)
		}
	}
	coeffs := pde.Coefficients{
		SecondOrder: pde.ConstCoeff(1),
		FirstOrder:  pde.ConstCoeff(0.5),
		ZerothOrder: pde.ConstCoeff(-0.1),
	}
	marcher := pde.MarchFunc(func(interior [][]float64, _, t2 float64, eq pde.EquationFunc) ([][]float64, error) {
		if _, _, err := eq(t2); err != nil {
			return nil, err
		}

		return interior, nil
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pde.Step(1.0, 0.5, g, values, bc, coeffs, marcher); err != nil {
			b.Fatalf("Step failed: %v", err)
		}
	}
}

// BenchmarkStep_Dirichlet1000 exercises the fast Dirichlet path.
func BenchmarkStep_Dirichlet1000(b *testing.B) {
	bc := pde.BoundaryPair{Lower: pde.DirichletValue(0), Upper: pde.DirichletValue(0)}
	benchmarkStep(b, 1000, 1, bc)
}

// BenchmarkStep_Robin1000 exercises the general Robin path.
func BenchmarkStep_Robin1000(b *testing.B) {
	robin := func(float64, *grid.Grid) pde.Boundary {
		return pde.Boundary{Alpha: pde.Scalar(1), Beta: pde.Scalar(0.5), Gamma: pde.Scalar(1)}
	}
	benchmarkStep(b, 1000, 1, pde.BoundaryPair{Lower: robin, Upper: robin})
}

// BenchmarkStep_Batched exercises a 32-row batch on a medium grid.
func BenchmarkStep_Batched(b *testing.B) {
	bc := pde.BoundaryPair{Lower: pde.DirichletValue(0), Upper: pde.DirichletValue(0)}
	benchmarkStep(b, 200, 32, bc)
}
