package grouping

import (
	"fmt"
	"strings"

	"gopivot/pkg/table"
	"gopivot/pkg/types"
)

// keySeparator joins key cell renderings into a single group identifier.
// The unit separator cannot appear in rendered cell values.
const keySeparator = "\x1f"

// missingKeyMarker stands in for a missing cell inside a group key.
const missingKeyMarker = "\x00"

// groupEntry records one distinct key combination and the rows that carry it.
type groupEntry struct {
	id     string
	fields []types.Field // key cell values, one per key column
	rows   []int         // member row indices in source order
}

// GroupedTable is a table partitioned by one or more key columns. The
// grouping structure itself is opaque to consumers; they interact with it
// only through the Pivot capability and the schema of the source table.
type GroupedTable struct {
	source  *table.Table
	keys    []string
	entries []*groupEntry
}

// GroupBy partitions a table by the given key columns. Groups are ordered
// by first encounter in source row order.
//
// Parameters:
//   - t: source table, borrowed read-only
//   - keys: names of the key columns, at least one
//
// Returns:
//   - *GroupedTable: the grouped artifact
//   - error: if no keys are given or a key column does not exist
func GroupBy(t *table.Table, keys ...string) (*GroupedTable, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("groupby requires at least one key column")
	}

	keyCols := make([]*table.Column, len(keys))
	for i, key := range keys {
		col, err := t.Column(key)
		if err != nil {
			return nil, fmt.Errorf("groupby key: %w", err)
		}
		keyCols[i] = col
	}

	gt := &GroupedTable{source: t, keys: keys}
	byID := make(map[string]*groupEntry)

	for row := 0; row < t.NumRows(); row++ {
		fields := make([]types.Field, len(keyCols))
		parts := make([]string, len(keyCols))
		for i, col := range keyCols {
			cell, err := col.Cell(row)
			if err != nil {
				return nil, err
			}
			fields[i] = cell
			if cell == nil {
				parts[i] = missingKeyMarker
			} else {
				parts[i] = cell.String()
			}
		}

		id := strings.Join(parts, keySeparator)
		entry, ok := byID[id]
		if !ok {
			entry = &groupEntry{id: id, fields: fields}
			byID[id] = entry
			gt.entries = append(gt.entries, entry)
		}
		entry.rows = append(entry.rows, row)
	}

	return gt, nil
}

// Source returns the underlying table. The grouped table's schema is the
// source schema; validators inspect it through this accessor.
func (gt *GroupedTable) Source() *table.Table {
	return gt.source
}

// Keys returns the key column names in grouping order.
func (gt *GroupedTable) Keys() []string {
	return gt.keys
}

// NumGroups returns the number of distinct key combinations.
func (gt *GroupedTable) NumGroups() int {
	return len(gt.entries)
}
