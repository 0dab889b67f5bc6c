// Package ingest loads external data into engine tables. CSV is the only
// supported format; columns are typed by inference since CSV carries no
// schema of its own.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopivot/pkg/table"
	"gopivot/pkg/types"
)

// ReadCSV parses CSV data into a table. The first record is the header and
// supplies column names. Per column, the narrowest dtype that fits every
// non-empty value is inferred, in the order i64, f64, str. Empty strings
// become missing cells.
func ReadCSV(r io.Reader) (*table.Table, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv input has no header record")
	}

	header := records[0]
	rows := records[1:]

	columns := make([]*table.Column, len(header))
	for i, name := range header {
		raw := make([]string, len(rows))
		for j, row := range rows {
			if i >= len(row) {
				return nil, fmt.Errorf("record %d has %d fields, header has %d", j+2, len(row), len(header))
			}
			raw[j] = row[i]
		}

		col, err := buildColumn(name, raw)
		if err != nil {
			return nil, err
		}
		columns[i] = col
	}

	return table.New(columns...)
}

// ReadCSVFile opens and parses a CSV file.
func ReadCSVFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv file: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// buildColumn infers a dtype for the raw values and materializes the cells.
func buildColumn(name string, raw []string) (*table.Column, error) {
	dtype := inferDtype(raw)

	cells := make([]types.Field, len(raw))
	for i, v := range raw {
		if v == "" {
			continue
		}
		switch dtype {
		case types.Int64:
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %w", name, i, err)
			}
			cells[i] = types.NewInt64Field(n)
		case types.Float64:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %w", name, i, err)
			}
			cells[i] = types.NewFloat64Field(f)
		default:
			cells[i] = types.NewTextField(v)
		}
	}

	return table.NewColumn(name, dtype, cells)
}

// inferDtype picks i64 if every non-empty value parses as a signed integer,
// f64 if every non-empty value parses as a float, str otherwise. A column
// of only empty strings stays text.
func inferDtype(raw []string) types.Dtype {
	sawValue := false
	allInt := true
	allFloat := true

	for _, v := range raw {
		if v == "" {
			continue
		}
		sawValue = true
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			allInt = false
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			allFloat = false
		}
	}

	switch {
	case sawValue && allInt:
		return types.Int64
	case sawValue && allFloat:
		return types.Float64
	default:
		return types.Text
	}
}
