package pde

import "errors"

// Sentinel errors for the discretization core.
// All messages carry the "pde: " prefix; match with errors.Is.
// Context (which edge, which batch row) is added via fmt.Errorf("...: %w").
var (
	// ErrGridNil indicates a nil *grid.Grid was supplied.
	ErrGridNil = errors.New("pde: grid is nil")

	// ErrGridTooSmall indicates the grid has fewer than four points.
	// Two boundary points plus at least two interior points are required:
	// the boundary extrapolation rule reads the two nearest interior values.
	ErrGridTooSmall = errors.New("pde: grid must have at least four points")

	// ErrBoundaryNil indicates a nil boundary condition function.
	ErrBoundaryNil = errors.New("pde: boundary condition function is nil")

	// ErrMarcherNil indicates a nil time marcher.
	ErrMarcherNil = errors.New("pde: time marcher is nil")

	// ErrEmptyBatch indicates a value field with zero batch rows.
	ErrEmptyBatch = errors.New("pde: value field has no batch rows")

	// ErrShapeMismatch indicates a value field, coefficient output or
	// boundary output whose shape cannot broadcast against the grid/batch.
	ErrShapeMismatch = errors.New("pde: shape mismatch")

	// ErrTimeDirection indicates a step that does not go backward in time.
	// Step treats its first time argument as the later one; nextTime must
	// be strictly smaller.
	ErrTimeDirection = errors.New("pde: step must go backward in time")

	// ErrBoundaryUnderdetermined indicates a boundary condition with both
	// alpha and beta absent; such a condition constrains nothing.
	ErrBoundaryUnderdetermined = errors.New("pde: boundary condition needs alpha or beta")
)
