package pivot

import "gopivot/pkg/primitives"

// Operation is the closed set of aggregations a pivot can apply. There is
// deliberately no extension point: the executor's dispatch over this enum
// is exhaustive.
type Operation int

const (
	First Operation = iota
	Sum
	Min
	Max
	Mean
	Median
)

// String returns the user-facing operation name.
func (op Operation) String() string {
	switch op {
	case First:
		return "first"
	case Sum:
		return "sum"
	case Min:
		return "min"
	case Max:
		return "max"
	case Mean:
		return "mean"
	case Median:
		return "median"
	default:
		return "unknown"
	}
}

// ValidOperations returns the accepted operation names in canonical order.
func ValidOperations() []string {
	return []string{"first", "sum", "min", "max", "mean", "median"}
}

// ResolveOperation maps an operation name to its Operation. Matching is
// case-sensitive and exact.
//
// Returns:
//   - Operation: the resolved operation
//   - error: *Error with kind ErrUnknownOperation, carrying the offending
//     name, the valid set, and the argument's span
func ResolveOperation(name primitives.Tagged) (Operation, error) {
	switch name.Item {
	case "first":
		return First, nil
	case "sum":
		return Sum, nil
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	case "mean":
		return Mean, nil
	case "median":
		return Median, nil
	default:
		return 0, &Error{
			Kind:  ErrUnknownOperation,
			Name:  name.Item,
			Valid: ValidOperations(),
			Span:  name.Span,
		}
	}
}
