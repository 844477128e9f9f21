// Package render formats normalized topology records as terminal output:
// text tables, per-group detail, an ASCII data-flow diagram, and the
// whole-environment summary. It never re-derives data; it only formats
// what the snapshot carries.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const headerWidth = 70

// Styles shared by the text views.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	subheaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("141"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// Header writes a full-width section header.
func Header(w io.Writer, title string) {
	rule := strings.Repeat("=", headerWidth)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, " %s\n", headerStyle.Render(title))
	fmt.Fprintf(w, "%s\n", rule)
}

// Subheader writes a subsection header.
func Subheader(w io.Writer, title string) {
	fmt.Fprintf(w, "\n  --- %s ---\n", subheaderStyle.Render(title))
}

// Table writes a text table with columns sized to their widest cell.
// An empty row set renders a placeholder line instead.
func Table(w io.Writer, headers []string, rows [][]string, indent int) {
	pad := strings.Repeat(" ", indent)
	if len(rows) == 0 {
		fmt.Fprintf(w, "%s%s\n", pad, dimStyle.Render("No data available."))
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = padRight(h, widths[i])
	}
	fmt.Fprintf(w, "%s%s\n", pad, strings.Join(cells, " | "))

	seps := make([]string, len(widths))
	for i, width := range widths {
		seps[i] = strings.Repeat("-", width)
	}
	fmt.Fprintf(w, "%s%s\n", pad, strings.Join(seps, "-+-"))

	for _, row := range rows {
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = padRight(cell, widths[i])
		}
		fmt.Fprintf(w, "%s%s\n", pad, strings.Join(cells, " | "))
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// clip truncates a value to fit a display column, marking the cut.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
