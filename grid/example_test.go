package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pdegrid/grid"
)

// ExampleUniform builds a five-point grid on [0, 2] and prints its
// coordinates and spacings.
func ExampleUniform() {
	g, err := grid.Uniform(0, 2, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("points:", g.Points())
	fmt.Println("deltas:", g.Deltas())
	// Output:
	// points: [0 0.5 1 1.5 2]
	// deltas: [0.5 0.5 0.5 0.5]
}

// ExampleNew shows a graded (non-uniform) grid clustered near zero.
func ExampleNew() {
	g, err := grid.New([]float64{0, 0.1, 0.25, 0.5, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("len:", g.Len())
	fmt.Println("deltas:", g.Deltas())
	// Output:
	// len: 5
	// deltas: [0.1 0.15 0.25 0.5]
}
