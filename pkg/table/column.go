package table

import (
	"fmt"
	"gopivot/pkg/types"
)

// Column is a named, typed sequence of cells. All non-missing cells carry
// the column's declared dtype; a nil cell is the engine's missing marker.
type Column struct {
	name  string
	dtype types.Dtype
	cells []types.Field
}

// NewColumn creates a column and verifies that every non-missing cell
// matches the declared dtype.
//
// Parameters:
//   - name: column name, must be non-empty
//   - dtype: declared element type
//   - cells: cell values; nil entries mark missing cells
//
// Returns:
//   - *Column: the constructed column
//   - error: if the name is empty, the dtype is invalid, or a cell disagrees
//     with the declared dtype
func NewColumn(name string, dtype types.Dtype, cells []types.Field) (*Column, error) {
	if name == "" {
		return nil, fmt.Errorf("column name cannot be empty")
	}
	if dtype == types.Invalid {
		return nil, fmt.Errorf("column %q has invalid dtype", name)
	}

	for i, cell := range cells {
		if cell == nil {
			continue
		}
		if cell.Dtype() != dtype {
			return nil, fmt.Errorf("column %q cell %d: expected dtype %s, got %s",
				name, i, dtype, cell.Dtype())
		}
	}

	return &Column{name: name, dtype: dtype, cells: cells}, nil
}

// Name returns the column name.
func (c *Column) Name() string {
	return c.name
}

// Dtype returns the declared element type.
func (c *Column) Dtype() types.Dtype {
	return c.dtype
}

// Len returns the number of cells, missing cells included.
func (c *Column) Len() int {
	return len(c.cells)
}

// Cell returns the cell at row i. A nil result means the cell is missing.
func (c *Column) Cell(i int) (types.Field, error) {
	if i < 0 || i >= len(c.cells) {
		return nil, fmt.Errorf("column %q: row %d out of range [0, %d)", c.name, i, len(c.cells))
	}
	return c.cells[i], nil
}

// IsMissing reports whether the cell at row i holds no value.
func (c *Column) IsMissing(i int) bool {
	return i >= 0 && i < len(c.cells) && c.cells[i] == nil
}

// Equal reports whether two columns have the same name, dtype and
// cell-by-cell contents.
func (c *Column) Equal(other *Column) bool {
	if other == nil {
		return false
	}
	if c.name != other.name || c.dtype != other.dtype || len(c.cells) != len(other.cells) {
		return false
	}
	for i, cell := range c.cells {
		o := other.cells[i]
		if cell == nil || o == nil {
			if cell != o {
				return false
			}
			continue
		}
		if !cell.Equals(o) {
			return false
		}
	}
	return true
}
