package types

// Dtype identifies the declared element type of a column.
//
// The set is closed: the engine knows exactly these dtypes and nothing else.
// Bool and Date exist because real tables contain them, but the pivot stage
// only ever looks at them to reject them.
type Dtype int

const (
	Invalid Dtype = iota
	UInt8
	UInt16
	UInt32
	UInt64
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	Text
	Bool
	Date
)

// String returns the short dtype name used in schemas and error messages.
func (d Dtype) String() string {
	switch d {
	case UInt8:
		return "u8"
	case UInt16:
		return "u16"
	case UInt32:
		return "u32"
	case UInt64:
		return "u64"
	case Int8:
		return "i8"
	case Int16:
		return "i16"
	case Int32:
		return "i32"
	case Int64:
		return "i64"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case Text:
		return "str"
	case Bool:
		return "bool"
	case Date:
		return "date"
	default:
		return "invalid"
	}
}

// IsUnsignedInteger reports whether d is one of the unsigned integer widths.
func (d Dtype) IsUnsignedInteger() bool {
	switch d {
	case UInt8, UInt16, UInt32, UInt64:
		return true
	default:
		return false
	}
}

// IsSignedInteger reports whether d is one of the signed integer widths.
func (d Dtype) IsSignedInteger() bool {
	switch d {
	case Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// IsInteger reports whether d is any integer dtype, signed or unsigned.
func (d Dtype) IsInteger() bool {
	return d.IsSignedInteger() || d.IsUnsignedInteger()
}

// IsFloat reports whether d is a floating-point dtype.
func (d Dtype) IsFloat() bool {
	return d == Float32 || d == Float64
}

// IsNumeric reports whether d can participate in numeric aggregation.
func (d Dtype) IsNumeric() bool {
	return d.IsInteger() || d.IsFloat()
}

// IsText reports whether d is the UTF-8 text dtype.
func (d Dtype) IsText() bool {
	return d == Text
}
