package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable is a simple table component for rendering static data.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewSimpleTable creates a new SimpleTable with the given title and headers.
func NewSimpleTable(title string, headers ...string) *SimpleTable {
	return &SimpleTable{Title: title, Headers: headers}
}

// AddRow adds a row to the table.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table. An empty table renders as "".
func (t *SimpleTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	// lipgloss widths include padding
	total := len(widths) - 1
	for i := range widths {
		widths[i] += 2
		total += widths[i]
	}

	header := styles.Bold.Padding(0, 1)
	body := styles.Body.Padding(0, 1)
	t.writeRow(&sb, t.Headers, widths, styles.Muted, func(int, string) lipgloss.Style { return header })
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")
	for _, row := range t.Rows {
		t.writeRow(&sb, row, widths, styles.Muted, func(int, string) lipgloss.Style { return body })
	}
	return sb.String()
}

func (t *SimpleTable) writeRow(sb *strings.Builder, row []string, widths []int, sep lipgloss.Style, style func(int, string) lipgloss.Style) {
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		sb.WriteString(style(i, cell).Width(widths[i]).Render(cell))
		if i < len(widths)-1 {
			sb.WriteString(sep.Render("|"))
		}
	}
	sb.WriteString("\n")
}
