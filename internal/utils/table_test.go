package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableFormatter(t *testing.T) {
	table := NewTableFormatter([]string{"ID", "Name"})
	table.AddRow([]string{"a", "Audit"})
	table.AddRow([]string{"interviews", "Stakeholder interviews"})

	out := table.String()
	lines := strings.Split(out, "\n")

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Stakeholder interviews")
	// column widths grow to fit the widest cell
	assert.Contains(t, out, "│ interviews │")
	// borders plus header, separator and two rows
	assert.Len(t, lines, 7)
}

func TestTableFormatterIgnoresMismatchedRows(t *testing.T) {
	table := NewTableFormatter([]string{"ID", "Name"})
	table.AddRow([]string{"only-one-cell"})

	assert.NotContains(t, table.String(), "only-one-cell")
}
