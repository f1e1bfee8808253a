package pde

import "fmt"

// valuesKind tags the shape variant carried by a Values.
type valuesKind uint8

const (
	kindAbsent valuesKind = iota
	kindScalar
	kindVector
	kindBatch
)

// Values is a broadcastable numeric quantity returned by coefficient and
// boundary-condition callbacks. It is a tagged variant rather than a raw
// interface{} or a nilable slice, so "absent" is an explicit state that is
// resolved exactly where the value is consumed — it never flows through
// arithmetic as a nil.
//
// Shapes:
//   - the zero Values is Absent (term missing / homogeneous)
//   - Scalar(v) broadcasts everywhere
//   - Vector(v):
//     — over the grid: one value per grid point, len = grid length
//     — at an edge:    one value per batch row,  len = batch size
//   - Batch(rows): one value per (batch row, grid point); grid-level only
//
// Broadcasting is explicit and checked: an incompatible length is reported
// as ErrShapeMismatch instead of being padded or truncated.
type Values struct {
	kind   valuesKind
	scalar float64
	vector []float64
	batch  [][]float64
}

// Scalar returns a Values broadcasting the single number v.
func Scalar(v float64) Values { return Values{kind: kindScalar, scalar: v} }

// Vector returns a Values holding one number per grid point (grid-level)
// or per batch row (edge-level). The slice is not copied.
func Vector(v []float64) Values { return Values{kind: kindVector, vector: v} }

// Batch returns a Values holding one number per (batch row, grid point).
// The rows are not copied.
func Batch(rows [][]float64) Values { return Values{kind: kindBatch, batch: rows} }

// IsAbsent reports whether v is the absent variant.
func (v Values) IsAbsent() bool { return v.kind == kindAbsent }

// gridField validates v against a [batch][n] field and returns a point
// accessor. Absent broadcasts to zero.
func (v Values) gridField(batch, n int) (func(k, i int) float64, error) {
	switch v.kind {
	case kindAbsent:
		return func(int, int) float64 { return 0 }, nil
	case kindScalar:
		c := v.scalar

		return func(int, int) float64 { return c }, nil
	case kindVector:
		if len(v.vector) != n {
			return nil, fmt.Errorf("pde: vector of length %d cannot broadcast over %d grid points: %w",
				len(v.vector), n, ErrShapeMismatch)
		}
		vec := v.vector

		return func(_, i int) float64 { return vec[i] }, nil
	case kindBatch:
		if len(v.batch) != batch {
			return nil, fmt.Errorf("pde: batch of %d rows cannot broadcast over %d value rows: %w",
				len(v.batch), batch, ErrShapeMismatch)
		}
		for k, row := range v.batch {
			if len(row) != n {
				return nil, fmt.Errorf("pde: batch row %d has length %d, want %d: %w",
					k, len(row), n, ErrShapeMismatch)
			}
		}
		rows := v.batch

		return func(k, i int) float64 { return rows[k][i] }, nil
	}

	return nil, ErrShapeMismatch
}

// edgeField validates v against a boundary slice of batch entries and
// returns a per-row accessor. Absent broadcasts to zero. Batch-shaped
// values are rejected: an edge holds one value per batch row, not a field.
func (v Values) edgeField(batch int) (func(k int) float64, error) {
	switch v.kind {
	case kindAbsent:
		return func(int) float64 { return 0 }, nil
	case kindScalar:
		c := v.scalar

		return func(int) float64 { return c }, nil
	case kindVector:
		if len(v.vector) != batch {
			return nil, fmt.Errorf("pde: edge vector of length %d cannot broadcast over batch of %d: %w",
				len(v.vector), batch, ErrShapeMismatch)
		}
		vec := v.vector

		return func(k int) float64 { return vec[k] }, nil
	}

	return nil, fmt.Errorf("pde: edge values must be Scalar or Vector: %w", ErrShapeMismatch)
}
