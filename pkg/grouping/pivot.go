package grouping

import (
	"fmt"

	"gopivot/pkg/table"
	"gopivot/pkg/types"
)

// Pivot is the aggregatable intermediate produced by GroupedTable.Pivot.
// It holds, for every (group, distinct pivot value) cell, the value-column
// cells that landed there, in source row order. One aggregation method is
// applied to turn it into a table.
type Pivot struct {
	grouped    *GroupedTable
	valueDtype types.Dtype
	headers    []string            // distinct pivot values, first-encounter order
	headerIdx  map[string]int      // pivot value -> index into headers
	cells      map[cellKey][]types.Field
}

// cellKey addresses one pivot cell: a group paired with a pivot value.
type cellKey struct {
	group  int
	header int
}

// Pivot spreads the distinct values of pivotCol into prospective output
// columns, collecting valueCol cells per (group, pivot value) pair.
//
// Rows whose pivot cell is missing contribute to no output column; rows
// whose value cell is missing contribute nothing to their cell, so a cell
// fed only missing values stays missing in the aggregated result.
//
// Returns an error if either column does not exist or the value column's
// dtype is not aggregatable. Callers are expected to have validated both
// columns already; the checks here guard the engine itself.
func (gt *GroupedTable) Pivot(pivotCol, valueCol string) (*Pivot, error) {
	pc, err := gt.source.Column(pivotCol)
	if err != nil {
		return nil, fmt.Errorf("pivot column: %w", err)
	}
	vc, err := gt.source.Column(valueCol)
	if err != nil {
		return nil, fmt.Errorf("value column: %w", err)
	}
	if !vc.Dtype().IsNumeric() {
		return nil, fmt.Errorf("value column %q has non-aggregatable dtype %s", valueCol, vc.Dtype())
	}

	p := &Pivot{
		grouped:    gt,
		valueDtype: vc.Dtype(),
		headerIdx:  make(map[string]int),
		cells:      make(map[cellKey][]types.Field),
	}

	for gIdx, entry := range gt.entries {
		for _, row := range entry.rows {
			pivotCell, err := pc.Cell(row)
			if err != nil {
				return nil, err
			}
			if pivotCell == nil {
				continue
			}

			header := pivotCell.String()
			hIdx, ok := p.headerIdx[header]
			if !ok {
				hIdx = len(p.headers)
				p.headers = append(p.headers, header)
				p.headerIdx[header] = hIdx
			}

			valueCell, err := vc.Cell(row)
			if err != nil {
				return nil, err
			}
			if valueCell == nil {
				continue
			}

			key := cellKey{group: gIdx, header: hIdx}
			p.cells[key] = append(p.cells[key], valueCell)
		}
	}

	return p, nil
}

// First aggregates each cell to its first observed value, in source row order.
func (p *Pivot) First() (*table.Table, error) {
	return p.aggregate(aggFirst)
}

// Sum aggregates each cell to the sum of its values.
func (p *Pivot) Sum() (*table.Table, error) {
	return p.aggregate(aggSum)
}

// Min aggregates each cell to its smallest value.
func (p *Pivot) Min() (*table.Table, error) {
	return p.aggregate(aggMin)
}

// Max aggregates each cell to its largest value.
func (p *Pivot) Max() (*table.Table, error) {
	return p.aggregate(aggMax)
}

// Mean aggregates each cell to the arithmetic mean of its values.
func (p *Pivot) Mean() (*table.Table, error) {
	return p.aggregate(aggMean)
}

// Median aggregates each cell to the median of its values.
func (p *Pivot) Median() (*table.Table, error) {
	return p.aggregate(aggMedian)
}

// aggregate reduces every populated cell with the requested aggregation and
// assembles the result table: key columns first, then one column per
// distinct pivot value. Unpopulated cells stay missing.
func (p *Pivot) aggregate(kind aggKind) (*table.Table, error) {
	reducer, err := newCellReducer(kind, p.valueDtype)
	if err != nil {
		return nil, err
	}

	gt := p.grouped
	columns := make([]*table.Column, 0, len(gt.keys)+len(p.headers))

	for kIdx, key := range gt.keys {
		keyCol, err := gt.source.Column(key)
		if err != nil {
			return nil, err
		}
		cells := make([]types.Field, len(gt.entries))
		for gIdx, entry := range gt.entries {
			cells[gIdx] = entry.fields[kIdx]
		}
		col, err := table.NewColumn(key, keyCol.Dtype(), cells)
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	for hIdx, header := range p.headers {
		cells := make([]types.Field, len(gt.entries))
		for gIdx := range gt.entries {
			values := p.cells[cellKey{group: gIdx, header: hIdx}]
			if len(values) == 0 {
				continue
			}
			agg, err := reducer.Reduce(values)
			if err != nil {
				return nil, fmt.Errorf("aggregating pivot column %q: %w", header, err)
			}
			cells[gIdx] = agg
		}
		col, err := table.NewColumn(header, reducer.ResultDtype(), cells)
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	return table.New(columns...)
}
