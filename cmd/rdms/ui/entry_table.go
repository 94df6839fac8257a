package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rdms/internal/entry"
)

// EntryTable renders entries as aligned columns under the interchange headers.
type EntryTable struct {
	Headers  []string
	Rows     [][]string
	MaxCell  int // 0 means no truncation
	EmptyMsg string
}

// NewEntryTable builds a table for the given entries.
func NewEntryTable(entries []entry.Entry) *EntryTable {
	t := &EntryTable{
		Headers:  entry.Columns,
		Rows:     make([][]string, 0, len(entries)),
		MaxCell:  ListCellWidth,
		EmptyMsg: "No entries yet.",
	}
	for _, e := range entries {
		t.AddRow(e.Fields()...)
	}
	return t
}

// AddRow adds a row to the table.
func (t *EntryTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

func (t *EntryTable) cell(s string) string {
	// Multi-line descriptions are shown on one line in the pane.
	s = strings.ReplaceAll(s, "\n", " ")
	if t.MaxCell > 0 && lipgloss.Width(s) > t.MaxCell {
		r := []rune(s)
		if len(r) > t.MaxCell-1 {
			r = r[:t.MaxCell-1]
		}
		return string(r) + "…"
	}
	return s
}

// View renders the table using the provided styles.
func (t *EntryTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return styles.Muted.Render(t.EmptyMsg)
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, c := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(t.cell(c)); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := styles.ListHeader.Padding(0, 1)
	rowStyle := styles.ListRow.Padding(0, 1)
	sep := styles.Muted.Render("|")

	var sb strings.Builder
	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(colWidths[i]).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(sep)
		}
	}
	sb.WriteString("\n")

	total := len(t.Headers) - 1
	for _, w := range colWidths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total)))

	for _, row := range t.Rows {
		sb.WriteString("\n")
		for i, c := range row {
			if i >= len(colWidths) {
				break
			}
			sb.WriteString(rowStyle.Width(colWidths[i]).Render(t.cell(c)))
			if i < len(row)-1 {
				sb.WriteString(sep)
			}
		}
	}
	return sb.String()
}
