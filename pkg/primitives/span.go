package primitives

// Span marks a half-open byte range [Start, End) inside the invocation that
// supplied an argument. The engine never renders spans itself; it only
// carries them so the host can point at the offending argument when it
// formats an error.
type Span struct {
	Start int
	End   int
}

// UnknownSpan is used when an argument has no meaningful source location,
// e.g. when a pivot is driven programmatically rather than from a command line.
var UnknownSpan = Span{Start: -1, End: -1}

// IsKnown reports whether the span points at a real source location.
func (s Span) IsKnown() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// Tagged pairs a string argument with the span it was parsed from.
// Column names and operation names travel through the pivot pipeline as
// Tagged values so that every failure can be attributed to the exact
// argument that caused it.
type Tagged struct {
	Item string
	Span Span
}

// NewTagged creates a tagged argument.
func NewTagged(item string, span Span) Tagged {
	return Tagged{Item: item, Span: span}
}

// Untagged wraps a bare string with an unknown source location.
func Untagged(item string) Tagged {
	return Tagged{Item: item, Span: UnknownSpan}
}
