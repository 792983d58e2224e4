// Package stats contains pass summaries and plain-text reporting.
package stats

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = "  "

type column struct {
	header string
	right  bool
}

// table lays out cells in aligned columns. Cells may carry ANSI styling;
// widths are measured on the visible text only.
type table struct {
	columns []column
	rows    [][]string
}

func newTable(columns ...column) *table {
	return &table{columns: columns}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) widths() []int {
	n := len(t.columns)
	for _, row := range t.rows {
		n = max(n, len(row))
	}
	widths := make([]int, n)
	for i, c := range t.columns {
		widths[i] = cellWidth(c.header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], cellWidth(cell))
		}
	}
	return widths
}

func (t *table) lines() []string {
	widths := t.widths()
	if len(widths) == 0 {
		return nil
	}
	out := make([]string, 0, len(t.rows)+1)
	if len(t.columns) > 0 {
		headers := make([]string, len(t.columns))
		for i, c := range t.columns {
			headers[i] = c.header
		}
		out = append(out, t.line(headers, widths))
	}
	for _, row := range t.rows {
		out = append(out, t.line(row, widths))
	}
	return out
}

func (t *table) line(cells []string, widths []int) string {
	var b strings.Builder
	for i, width := range widths {
		if i > 0 {
			b.WriteString(columnGap)
		}
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		right := i < len(t.columns) && t.columns[i].right
		b.WriteString(pad(cell, width, right))
	}
	return strings.TrimRight(b.String(), " ")
}

func pad(cell string, width int, right bool) string {
	gap := width - cellWidth(cell)
	if gap <= 0 {
		return cell
	}
	if right {
		return strings.Repeat(" ", gap) + cell
	}
	return cell + strings.Repeat(" ", gap)
}

// cellWidth is the number of terminal cells cell occupies, ignoring escape sequences.
func cellWidth(cell string) int {
	return lipgloss.Width(cell)
}
