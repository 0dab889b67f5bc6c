package types

// Field is a single cell value inside a column.
//
// Concrete field types cover one dtype family each (signed integers,
// unsigned integers, floats, text, bool, date); the exact width lives in
// the Dtype the field carries. A missing cell is represented by a nil
// Field at the column level, never by a sentinel value.
type Field interface {
	// Dtype returns the declared dtype of this value.
	Dtype() Dtype

	// String returns the rendered cell value.
	String() string

	// Equals reports whether the other field has the same dtype and value.
	Equals(other Field) bool
}
