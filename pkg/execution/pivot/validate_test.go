package pivot

import (
	"errors"
	"testing"

	"gopivot/pkg/primitives"
	"gopivot/pkg/table"
	"gopivot/pkg/types"
)

// allDtypes is every dtype the engine can declare for a column.
var allDtypes = []types.Dtype{
	types.UInt8, types.UInt16, types.UInt32, types.UInt64,
	types.Int8, types.Int16, types.Int32, types.Int64,
	types.Float32, types.Float64,
	types.Text, types.Bool, types.Date,
}

// dtypeTable builds a zero-row table with one column per dtype, named after
// the dtype itself.
func dtypeTable(t *testing.T) *table.Table {
	t.Helper()
	columns := make([]*table.Column, len(allDtypes))
	for i, dtype := range allDtypes {
		col, err := table.NewColumn(dtype.String(), dtype, nil)
		if err != nil {
			t.Fatalf("NewColumn(%s) failed: %v", dtype, err)
		}
		columns[i] = col
	}
	tbl, err := table.New(columns...)
	if err != nil {
		t.Fatalf("table.New failed: %v", err)
	}
	return tbl
}

func TestCheckPivotColumnDtypeGate(t *testing.T) {
	tbl := dtypeTable(t)

	for _, dtype := range allDtypes {
		t.Run(dtype.String(), func(t *testing.T) {
			err := CheckPivotColumn(tbl, primitives.Untagged(dtype.String()))
			accepted := dtype.IsInteger() || dtype.IsText()

			if accepted && err != nil {
				t.Fatalf("dtype %s rejected: %v", dtype, err)
			}
			if !accepted {
				if err == nil {
					t.Fatalf("dtype %s unexpectedly accepted", dtype)
				}
				var pe *Error
				if !errors.As(err, &pe) {
					t.Fatalf("error type = %T, want *Error", err)
				}
				if pe.Kind != ErrUnsupportedPivotColumnType {
					t.Errorf("Kind = %v, want ErrUnsupportedPivotColumnType", pe.Kind)
				}
				if pe.Dtype != dtype {
					t.Errorf("Dtype = %v, want %v", pe.Dtype, dtype)
				}
			}
		})
	}
}

func TestCheckValueColumnDtypeGate(t *testing.T) {
	tbl := dtypeTable(t)

	for _, dtype := range allDtypes {
		t.Run(dtype.String(), func(t *testing.T) {
			err := CheckValueColumn(tbl, primitives.Untagged(dtype.String()))

			if dtype.IsNumeric() && err != nil {
				t.Fatalf("dtype %s rejected: %v", dtype, err)
			}
			if !dtype.IsNumeric() {
				if err == nil {
					t.Fatalf("dtype %s unexpectedly accepted", dtype)
				}
				var pe *Error
				if !errors.As(err, &pe) {
					t.Fatalf("error type = %T, want *Error", err)
				}
				if pe.Kind != ErrUnsupportedValueColumnType {
					t.Errorf("Kind = %v, want ErrUnsupportedValueColumnType", pe.Kind)
				}
				if pe.Dtype != dtype {
					t.Errorf("Dtype = %v, want %v", pe.Dtype, dtype)
				}
			}
		})
	}
}

func TestCheckColumnNotFound(t *testing.T) {
	tbl := dtypeTable(t)
	span := primitives.Span{Start: 4, End: 11}
	arg := primitives.NewTagged("missing", span)

	for _, check := range []struct {
		name string
		fn   func(*table.Table, primitives.Tagged) error
	}{
		{"pivot", CheckPivotColumn},
		{"value", CheckValueColumn},
	} {
		t.Run(check.name, func(t *testing.T) {
			err := check.fn(tbl, arg)
			if err == nil {
				t.Fatal("expected lookup failure")
			}

			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("error type = %T, want *Error", err)
			}
			if pe.Kind != ErrColumnNotFound {
				t.Errorf("Kind = %v, want ErrColumnNotFound", pe.Kind)
			}
			if pe.Name != "missing" || pe.Span != span {
				t.Errorf("Name/Span = %q/%v, want %q/%v", pe.Name, pe.Span, "missing", span)
			}
			// The engine's lookup error is kept as the cause.
			if pe.Cause == nil {
				t.Error("expected engine lookup error as cause")
			}
		})
	}
}

func TestSameColumnForPivotAndValue(t *testing.T) {
	tbl := dtypeTable(t)

	// Integer dtypes pass both gates, so the same column may serve both roles.
	arg := primitives.Untagged("i32")
	if err := CheckPivotColumn(tbl, arg); err != nil {
		t.Errorf("pivot gate rejected i32: %v", err)
	}
	if err := CheckValueColumn(tbl, arg); err != nil {
		t.Errorf("value gate rejected i32: %v", err)
	}
}
