package grouping

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gopivot/pkg/table"
	"gopivot/pkg/types"
)

// cellMatrix renders a table row-major for comparison; missing cells render
// as "null".
func cellMatrix(t *testing.T, tbl *table.Table) [][]string {
	t.Helper()
	matrix := make([][]string, tbl.NumRows())
	for row := 0; row < tbl.NumRows(); row++ {
		matrix[row] = make([]string, tbl.NumColumns())
		for i, col := range tbl.Columns() {
			cell, err := col.Cell(row)
			if err != nil {
				t.Fatalf("Cell(%d) failed: %v", row, err)
			}
			if cell == nil {
				matrix[row][i] = "null"
			} else {
				matrix[row][i] = cell.String()
			}
		}
	}
	return matrix
}

// sampleTable builds the two-row scenario: {a: one, b: x, c: 1}, {a: two, b: y, c: 2}.
func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	return mustTable(t,
		textColumn(t, "a", "one", "two"),
		textColumn(t, "b", "x", "y"),
		intColumn(t, "c", 1, 2),
	)
}

func TestPivotSumSpreadsAndFillsMissing(t *testing.T) {
	gt, err := GroupBy(sampleTable(t), "a")
	if err != nil {
		t.Fatalf("GroupBy failed: %v", err)
	}

	pivot, err := gt.Pivot("b", "c")
	if err != nil {
		t.Fatalf("Pivot failed: %v", err)
	}

	result, err := pivot.Sum()
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}

	wantNames := []string{"a", "x", "y"}
	if diff := cmp.Diff(wantNames, result.ColumnNames()); diff != "" {
		t.Fatalf("column names mismatch (-want +got):\n%s", diff)
	}

	want := [][]string{
		{"one", "1", "null"},
		{"two", "null", "2"},
	}
	if diff := cmp.Diff(want, cellMatrix(t, result)); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestPivotAccumulatesPerCell(t *testing.T) {
	tbl := mustTable(t,
		textColumn(t, "a", "one", "one", "one", "two"),
		textColumn(t, "b", "x", "x", "y", "x"),
		intColumn(t, "c", 1, 10, 3, 7),
	)
	gt, err := GroupBy(tbl, "a")
	if err != nil {
		t.Fatalf("GroupBy failed: %v", err)
	}
	pivot, err := gt.Pivot("b", "c")
	if err != nil {
		t.Fatalf("Pivot failed: %v", err)
	}

	tests := []struct {
		name      string
		aggregate func() (*table.Table, error)
		want      [][]string
	}{
		{"sum", pivot.Sum, [][]string{{"one", "11", "3"}, {"two", "7", "null"}}},
		{"min", pivot.Min, [][]string{{"one", "1", "3"}, {"two", "7", "null"}}},
		{"max", pivot.Max, [][]string{{"one", "10", "3"}, {"two", "7", "null"}}},
		{"first", pivot.First, [][]string{{"one", "1", "3"}, {"two", "7", "null"}}},
		{"mean", pivot.Mean, [][]string{{"one", "5.5", "3"}, {"two", "7", "null"}}},
		{"median", pivot.Median, [][]string{{"one", "5.5", "3"}, {"two", "7", "null"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.aggregate()
			if err != nil {
				t.Fatalf("%s failed: %v", tt.name, err)
			}
			if diff := cmp.Diff(tt.want, cellMatrix(t, result)); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPivotSingleRowDegenerate(t *testing.T) {
	tbl := mustTable(t,
		textColumn(t, "a", "one"),
		textColumn(t, "b", "x"),
		intColumn(t, "c", 5),
	)
	gt, err := GroupBy(tbl, "a")
	if err != nil {
		t.Fatalf("GroupBy failed: %v", err)
	}
	pivot, err := gt.Pivot("b", "c")
	if err != nil {
		t.Fatalf("Pivot failed: %v", err)
	}

	aggregates := map[string]func() (*table.Table, error){
		"first":  pivot.First,
		"sum":    pivot.Sum,
		"min":    pivot.Min,
		"max":    pivot.Max,
		"mean":   pivot.Mean,
		"median": pivot.Median,
	}

	for name, aggregate := range aggregates {
		t.Run(name, func(t *testing.T) {
			result, err := aggregate()
			if err != nil {
				t.Fatalf("%s failed: %v", name, err)
			}
			if result.NumRows() != 1 || result.NumColumns() != 2 {
				t.Fatalf("shape = (%d, %d), want (1, 2)", result.NumRows(), result.NumColumns())
			}
			// Every aggregate of a single value reports that value.
			want := [][]string{{"one", "5"}}
			if diff := cmp.Diff(want, cellMatrix(t, result)); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPivotResultDtypes(t *testing.T) {
	cells := []types.Field{
		types.NewIntField(types.Int16, 4),
		types.NewIntField(types.Int16, 6),
	}
	c, err := table.NewColumn("c", types.Int16, cells)
	if err != nil {
		t.Fatalf("NewColumn failed: %v", err)
	}
	tbl := mustTable(t,
		textColumn(t, "a", "one", "one"),
		textColumn(t, "b", "x", "x"),
		c,
	)
	gt, err := GroupBy(tbl, "a")
	if err != nil {
		t.Fatalf("GroupBy failed: %v", err)
	}
	pivot, err := gt.Pivot("b", "c")
	if err != nil {
		t.Fatalf("Pivot failed: %v", err)
	}

	tests := []struct {
		name      string
		aggregate func() (*table.Table, error)
		want      types.Dtype
	}{
		{"first keeps input width", pivot.First, types.Int16},
		{"sum widens to i64", pivot.Sum, types.Int64},
		{"min widens to i64", pivot.Min, types.Int64},
		{"mean is f64", pivot.Mean, types.Float64},
		{"median is f64", pivot.Median, types.Float64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.aggregate()
			if err != nil {
				t.Fatalf("aggregate failed: %v", err)
			}
			col, err := result.Column("x")
			if err != nil {
				t.Fatalf("Column(x) failed: %v", err)
			}
			if col.Dtype() != tt.want {
				t.Errorf("dtype = %v, want %v", col.Dtype(), tt.want)
			}
		})
	}
}

func TestPivotUnsignedValues(t *testing.T) {
	cells := []types.Field{
		types.NewUintField(types.UInt8, 200),
		types.NewUintField(types.UInt8, 100),
	}
	c, err := table.NewColumn("c", types.UInt8, cells)
	if err != nil {
		t.Fatalf("NewColumn failed: %v", err)
	}
	tbl := mustTable(t,
		textColumn(t, "a", "one", "one"),
		textColumn(t, "b", "x", "x"),
		c,
	)
	gt, err := GroupBy(tbl, "a")
	if err != nil {
		t.Fatalf("GroupBy failed: %v", err)
	}
	pivot, err := gt.Pivot("b", "c")
	if err != nil {
		t.Fatalf("Pivot failed: %v", err)
	}

	result, err := pivot.Sum()
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	want := [][]string{{"one", "300"}}
	if diff := cmp.Diff(want, cellMatrix(t, result)); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}

	col, err := result.Column("x")
	if err != nil {
		t.Fatalf("Column(x) failed: %v", err)
	}
	if col.Dtype() != types.UInt64 {
		t.Errorf("dtype = %v, want UInt64", col.Dtype())
	}
}

func TestPivotSumOverflow(t *testing.T) {
	tbl := mustTable(t,
		textColumn(t, "a", "one", "one"),
		textColumn(t, "b", "x", "x"),
		intColumn(t, "c", math.MaxInt64, 1),
	)
	gt, err := GroupBy(tbl, "a")
	if err != nil {
		t.Fatalf("GroupBy failed: %v", err)
	}
	pivot, err := gt.Pivot("b", "c")
	if err != nil {
		t.Fatalf("Pivot failed: %v", err)
	}

	if _, err := pivot.Sum(); err == nil {
		t.Fatal("expected overflow error")
	} else if !strings.Contains(err.Error(), "overflow") {
		t.Errorf("error = %v, want overflow mention", err)
	}
}

func TestPivotErrors(t *testing.T) {
	gt, err := GroupBy(sampleTable(t), "a")
	if err != nil {
		t.Fatalf("GroupBy failed: %v", err)
	}

	if _, err := gt.Pivot("missing", "c"); err == nil {
		t.Error("expected error for absent pivot column")
	}
	if _, err := gt.Pivot("b", "missing"); err == nil {
		t.Error("expected error for absent value column")
	}
	// Text is not aggregatable as a value column at the engine level either.
	if _, err := gt.Pivot("b", "a"); err == nil {
		t.Error("expected error for non-numeric value column")
	}
}

func TestPivotIdempotence(t *testing.T) {
	run := func() *table.Table {
		gt, err := GroupBy(sampleTable(t), "a")
		if err != nil {
			t.Fatalf("GroupBy failed: %v", err)
		}
		pivot, err := gt.Pivot("b", "c")
		if err != nil {
			t.Fatalf("Pivot failed: %v", err)
		}
		result, err := pivot.Sum()
		if err != nil {
			t.Fatalf("Sum failed: %v", err)
		}
		return result
	}

	if !run().Equal(run()) {
		t.Error("identical pivot invocations must produce equal tables")
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		nums []float64
		want float64
	}{
		{"single", []float64{5}, 5},
		{"odd count", []float64{9, 1, 5}, 5},
		{"even count", []float64{4, 1, 3, 2}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median(tt.nums); got != tt.want {
				t.Errorf("median(%v) = %v, want %v", tt.nums, got, tt.want)
			}
		})
	}
}
