package pivot

import (
	"errors"
	"fmt"
	"strings"

	"gopivot/pkg/primitives"
	"gopivot/pkg/types"
)

// ErrorKind classifies pivot failures. Every kind is terminal: the
// invocation aborts, nothing is retried, and recovery is a host decision.
type ErrorKind int

const (
	// ErrUnknownOperation means the operation name is outside the closed set.
	ErrUnknownOperation ErrorKind = iota

	// ErrMissingInput means no upstream artifact was available.
	ErrMissingInput

	// ErrUnexpectedInputKind means the upstream artifact was not a grouped table.
	ErrUnexpectedInputKind

	// ErrColumnNotFound means a named column is absent from the schema.
	ErrColumnNotFound

	// ErrUnsupportedPivotColumnType means the pivot column's dtype is not
	// discrete enough to spread into output columns.
	ErrUnsupportedPivotColumnType

	// ErrUnsupportedValueColumnType means the value column's dtype cannot be
	// aggregated numerically.
	ErrUnsupportedValueColumnType

	// ErrAggregationFailure means the engine rejected the aggregation itself.
	ErrAggregationFailure
)

// String returns the error kind name used in diagnostics.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownOperation:
		return "unknown operation"
	case ErrMissingInput:
		return "missing input"
	case ErrUnexpectedInputKind:
		return "unexpected input kind"
	case ErrColumnNotFound:
		return "column not found"
	case ErrUnsupportedPivotColumnType:
		return "unsupported pivot column type"
	case ErrUnsupportedValueColumnType:
		return "unsupported value column type"
	case ErrAggregationFailure:
		return "aggregation failure"
	default:
		return "unknown error"
	}
}

// Error is a structured pivot failure. It carries the offending value and
// the span of the argument that caused it so the host can render the
// failure without re-deriving anything.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Name is the offending operation or column name, when one exists.
	Name string

	// Dtype is the rejected dtype for column-type failures.
	Dtype types.Dtype

	// Valid lists the accepted operation names for ErrUnknownOperation.
	Valid []string

	// Span locates the offending argument in the invocation.
	Span primitives.Span

	// Cause is the underlying engine error, when one exists.
	Cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnknownOperation:
		return fmt.Sprintf("%s: %q is not a pivot operation, expected one of: %s",
			e.Kind, e.Name, strings.Join(e.Valid, ", "))
	case ErrColumnNotFound:
		return fmt.Sprintf("%s: %q", e.Kind, e.Name)
	case ErrUnexpectedInputKind:
		return fmt.Sprintf("%s: expected a grouped table, got %s", e.Kind, e.Name)
	case ErrUnsupportedPivotColumnType, ErrUnsupportedValueColumnType:
		return fmt.Sprintf("%s: column %q has dtype %s", e.Kind, e.Name, e.Dtype)
	case ErrAggregationFailure:
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
		}
		return e.Kind.String()
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying engine error, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf extracts the pivot error kind from an error chain.
//
// Returns:
//   - ErrorKind: the kind, when err is or wraps a pivot Error
//   - bool: whether a pivot Error was found
func KindOf(err error) (ErrorKind, bool) {
	var pe *Error
	if !errors.As(err, &pe) {
		return 0, false
	}
	return pe.Kind, true
}
