package utils

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableFormatter helps create formatted tables for CLI output
type TableFormatter struct {
	headers []string
	rows    [][]string
	styles  []*lipgloss.Style
	widths  []int
}

// NewTableFormatter creates a new table formatter with headers
func NewTableFormatter(headers []string) *TableFormatter {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &TableFormatter{
		headers: headers,
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *TableFormatter) AddRow(row []string) {
	t.AddStyledRow(row, nil)
}

// AddStyledRow adds a row rendered with the given lipgloss style.
// A nil style renders plain text.
func (t *TableFormatter) AddStyledRow(row []string, style *lipgloss.Style) {
	if len(row) != len(t.headers) {
		return
	}
	t.rows = append(t.rows, row)
	t.styles = append(t.styles, style)
	// Update column widths
	for i, cell := range row {
		if len(cell) > t.widths[i] {
			t.widths[i] = len(cell)
		}
	}
}

// String returns the formatted table
func (t *TableFormatter) String() string {
	var sb strings.Builder

	t.writeBorder(&sb, "┌", "┬", "┐")

	sb.WriteString("│")
	for i, h := range t.headers {
		sb.WriteString(fmt.Sprintf(" %-*s ", t.widths[i], h))
		sb.WriteString("│")
	}
	sb.WriteString("\n")

	t.writeBorder(&sb, "├", "┼", "┤")

	for ri, row := range t.rows {
		sb.WriteString("│")
		for i, cell := range row {
			padded := fmt.Sprintf(" %-*s ", t.widths[i], cell)
			if style := t.styles[ri]; style != nil {
				padded = style.Render(padded)
			}
			sb.WriteString(padded)
			sb.WriteString("│")
		}
		sb.WriteString("\n")
	}

	t.writeBorder(&sb, "└", "┴", "┘")

	return sb.String()
}

func (t *TableFormatter) writeBorder(sb *strings.Builder, left, middle, right string) {
	sb.WriteString(left)
	for i, w := range t.widths {
		sb.WriteString(strings.Repeat("─", w+2))
		if i < len(t.widths)-1 {
			sb.WriteString(middle)
		}
	}
	sb.WriteString(right)
	sb.WriteString("\n")
}
