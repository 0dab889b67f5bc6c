package pivot

import (
	"gopivot/pkg/primitives"
	"gopivot/pkg/table"
)

// CheckPivotColumn verifies that the named column exists and is discrete
// enough to spread into output columns: any integer width or text.
//
// The table's own lookup failure is translated into the pivot error
// taxonomy rather than passed through, keeping the engine's wording out of
// this stage's contract.
func CheckPivotColumn(t *table.Table, col primitives.Tagged) error {
	c, err := t.Column(col.Item)
	if err != nil {
		return &Error{Kind: ErrColumnNotFound, Name: col.Item, Span: col.Span, Cause: err}
	}

	dtype := c.Dtype()
	if dtype.IsInteger() || dtype.IsText() {
		return nil
	}
	return &Error{Kind: ErrUnsupportedPivotColumnType, Name: col.Item, Dtype: dtype, Span: col.Span}
}

// CheckValueColumn verifies that the named column exists and is numerically
// aggregatable: any integer or floating-point width.
//
// The numeric gate applies uniformly to all operations; first would accept
// text values mechanically, but the contract rejects them regardless.
func CheckValueColumn(t *table.Table, col primitives.Tagged) error {
	c, err := t.Column(col.Item)
	if err != nil {
		return &Error{Kind: ErrColumnNotFound, Name: col.Item, Span: col.Span, Cause: err}
	}

	dtype := c.Dtype()
	if dtype.IsNumeric() {
		return nil
	}
	return &Error{Kind: ErrUnsupportedValueColumnType, Name: col.Item, Dtype: dtype, Span: col.Span}
}
