package pivot

import (
	"gopivot/pkg/grouping"
	"gopivot/pkg/primitives"
	"gopivot/pkg/table"
)

// Execute reshapes a grouped table: the distinct values of pivotCol become
// output columns, and each cell holds the op-aggregate of valueCol over the
// rows sharing that (group, pivot value) pair.
//
// Both columns must already have passed validation. Any failure the engine
// raises while pivoting or aggregating is wrapped as ErrAggregationFailure
// and never retried; span locates the invocation for the host's diagnostics.
//
// Returns:
//   - *table.Table: a freshly owned result table, one row per group and one
//     column per distinct pivot value after the key columns
//   - error: *Error with kind ErrAggregationFailure on engine failure
func Execute(grouped *grouping.GroupedTable, pivotCol, valueCol string, op Operation, span primitives.Span) (*table.Table, error) {
	intermediate, err := grouped.Pivot(pivotCol, valueCol)
	if err != nil {
		return nil, &Error{Kind: ErrAggregationFailure, Span: span, Cause: err}
	}

	var result *table.Table
	switch op {
	case First:
		result, err = intermediate.First()
	case Sum:
		result, err = intermediate.Sum()
	case Min:
		result, err = intermediate.Min()
	case Max:
		result, err = intermediate.Max()
	case Mean:
		result, err = intermediate.Mean()
	case Median:
		result, err = intermediate.Median()
	default:
		result, err = nil, &Error{Kind: ErrUnknownOperation, Name: op.String(), Valid: ValidOperations(), Span: span}
	}

	if err != nil {
		if _, ok := KindOf(err); ok {
			return nil, err
		}
		return nil, &Error{Kind: ErrAggregationFailure, Span: span, Cause: err}
	}
	return result, nil
}
