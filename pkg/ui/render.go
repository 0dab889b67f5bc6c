// Package ui renders engine tables for terminal output.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"gopivot/pkg/table"
)

// Styling shared with the rest of the command surface.
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06B6D4"))
)

// missingCell is how an unpopulated pivot cell renders.
const missingCell = "null"

// RenderTable renders a table as a bordered grid. Missing cells render as a
// muted "null" so unobserved pivot combinations stay visible.
func RenderTable(t *table.Table) (string, error) {
	rows := make([][]string, t.NumRows())
	missing := make([][]bool, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		rows[row] = make([]string, t.NumColumns())
		missing[row] = make([]bool, t.NumColumns())
		for i, col := range t.Columns() {
			cell, err := col.Cell(row)
			if err != nil {
				return "", err
			}
			if cell == nil {
				rows[row][i] = missingCell
				missing[row][i] = true
			} else {
				rows[row][i] = cell.String()
			}
		}
	}

	grid := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(t.ColumnNames()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(missing) && missing[row][col] {
				return missingStyle
			}
			return cellStyle
		})

	return grid.Render(), nil
}
