package types

import "strconv"

// IntField represents a signed integer cell. The value is held widened to
// int64 regardless of the declared width; the dtype keeps the logical width
// for schema validation.
type IntField struct {
	Value int64
	dtype Dtype
}

// NewIntField creates a signed integer field with the given declared width.
// The dtype must be one of Int8, Int16, Int32 or Int64.
func NewIntField(dtype Dtype, value int64) *IntField {
	if !dtype.IsSignedInteger() {
		dtype = Int64
	}
	return &IntField{Value: value, dtype: dtype}
}

// NewInt64Field creates an i64 field.
func NewInt64Field(value int64) *IntField {
	return &IntField{Value: value, dtype: Int64}
}

func (f *IntField) Dtype() Dtype {
	return f.dtype
}

func (f *IntField) String() string {
	return strconv.FormatInt(f.Value, 10)
}

func (f *IntField) Equals(other Field) bool {
	o, ok := other.(*IntField)
	if !ok {
		return false
	}
	return f.dtype == o.dtype && f.Value == o.Value
}

// UintField represents an unsigned integer cell, widened to uint64.
type UintField struct {
	Value uint64
	dtype Dtype
}

// NewUintField creates an unsigned integer field with the given declared
// width. The dtype must be one of UInt8, UInt16, UInt32 or UInt64.
func NewUintField(dtype Dtype, value uint64) *UintField {
	if !dtype.IsUnsignedInteger() {
		dtype = UInt64
	}
	return &UintField{Value: value, dtype: dtype}
}

// NewUint64Field creates a u64 field.
func NewUint64Field(value uint64) *UintField {
	return &UintField{Value: value, dtype: UInt64}
}

func (f *UintField) Dtype() Dtype {
	return f.dtype
}

func (f *UintField) String() string {
	return strconv.FormatUint(f.Value, 10)
}

func (f *UintField) Equals(other Field) bool {
	o, ok := other.(*UintField)
	if !ok {
		return false
	}
	return f.dtype == o.dtype && f.Value == o.Value
}
