package table

import (
	"fmt"
)

// Table is an ordered set of uniquely named columns of equal length.
// Tables are read-only after construction; every reshape produces a new one.
type Table struct {
	columns []*Column
	byName  map[string]int
}

// New creates a table from the given columns.
//
// Returns an error if no columns are supplied, a name repeats, or the
// columns disagree on row count.
func New(columns ...*Column) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table requires at least one column")
	}

	byName := make(map[string]int, len(columns))
	rows := columns[0].Len()
	for i, col := range columns {
		if _, exists := byName[col.Name()]; exists {
			return nil, fmt.Errorf("duplicate column name %q", col.Name())
		}
		if col.Len() != rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d",
				col.Name(), col.Len(), rows)
		}
		byName[col.Name()] = i
	}

	return &Table{columns: columns, byName: byName}, nil
}

// Column looks up a column by name.
//
// The returned error is the engine's own lookup failure; callers that need
// the pivot error taxonomy translate it rather than passing it through.
func (t *Table) Column(name string) (*Column, error) {
	idx, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("column %q not found in table", name)
	}
	return t.columns[idx], nil
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Columns returns the columns in declaration order.
func (t *Table) Columns() []*Column {
	return t.columns
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name()
	}
	return names
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// NumRows returns the row count shared by all columns.
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// Equal reports whether two tables have identical schemas and contents.
// Column order matters, matching the engine's definition of table equality.
func (t *Table) Equal(other *Table) bool {
	if other == nil || len(t.columns) != len(other.columns) {
		return false
	}
	for i, col := range t.columns {
		if !col.Equal(other.columns[i]) {
			return false
		}
	}
	return true
}
