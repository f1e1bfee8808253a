package scheme

import "errors"

// Sentinel errors for time marching. Match with errors.Is.
var (
	// ErrBadTheta indicates a weight outside [0, 1].
	ErrBadTheta = errors.New("scheme: theta weight must lie in [0, 1]")

	// ErrBadStep indicates a step with t1 >= t2; backward marching needs
	// a strictly positive interval.
	ErrBadStep = errors.New("scheme: backward step requires t1 < t2")

	// ErrEmptyField indicates an interior field with no rows or no points.
	ErrEmptyField = errors.New("scheme: interior field is empty")

	// ErrShapeMismatch indicates equation parameters whose shape does not
	// match the interior field.
	ErrShapeMismatch = errors.New("scheme: shape mismatch")
)
