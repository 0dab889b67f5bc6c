package types

import "time"

// The field types below exist so that tables can carry columns the pivot
// stage does not aggregate. Validators see only their dtype and reject it.

// BoolField represents a boolean cell.
type BoolField struct {
	Value bool
}

// NewBoolField creates a boolean field.
func NewBoolField(value bool) *BoolField {
	return &BoolField{Value: value}
}

func (f *BoolField) Dtype() Dtype {
	return Bool
}

func (f *BoolField) String() string {
	if f.Value {
		return "true"
	}
	return "false"
}

func (f *BoolField) Equals(other Field) bool {
	o, ok := other.(*BoolField)
	if !ok {
		return false
	}
	return f.Value == o.Value
}

// DateField represents a calendar date cell.
type DateField struct {
	Value time.Time
}

// NewDateField creates a date field.
func NewDateField(value time.Time) *DateField {
	return &DateField{Value: value}
}

func (f *DateField) Dtype() Dtype {
	return Date
}

func (f *DateField) String() string {
	return f.Value.Format("2006-01-02")
}

func (f *DateField) Equals(other Field) bool {
	o, ok := other.(*DateField)
	if !ok {
		return false
	}
	return f.Value.Equal(o.Value)
}
