package types

import "strconv"

// FloatField represents a floating-point cell, widened to float64.
type FloatField struct {
	Value float64
	dtype Dtype
}

// NewFloatField creates a float field with the given declared precision.
// The dtype must be Float32 or Float64.
func NewFloatField(dtype Dtype, value float64) *FloatField {
	if !dtype.IsFloat() {
		dtype = Float64
	}
	return &FloatField{Value: value, dtype: dtype}
}

// NewFloat64Field creates an f64 field.
func NewFloat64Field(value float64) *FloatField {
	return &FloatField{Value: value, dtype: Float64}
}

func (f *FloatField) Dtype() Dtype {
	return f.dtype
}

func (f *FloatField) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

func (f *FloatField) Equals(other Field) bool {
	o, ok := other.(*FloatField)
	if !ok {
		return false
	}
	return f.dtype == o.dtype && f.Value == o.Value
}
