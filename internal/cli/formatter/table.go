package formatter

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders an aligned table with a header separator line.
// Columns are as wide as their widest cell, measured without ANSI codes.
// Cells that read as numbers are right-aligned.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = StyleHeader.Render(h) + strings.Repeat(" ", widths[i]-lipgloss.Width(h))
	}
	writeRow(&b, styled)

	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeRow(&b, rules)

	for _, row := range rows {
		cells := make([]string, len(widths))
		for i := range widths {
			if i < len(row) {
				cells[i] = padCell(row[i], widths[i])
			} else {
				cells[i] = strings.Repeat(" ", widths[i])
			}
		}
		writeRow(&b, cells)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	line := strings.Join(cells, strings.Repeat(" ", colGap))
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteString("\n")
}

func padCell(cell string, width int) string {
	pad := strings.Repeat(" ", max(0, width-lipgloss.Width(cell)))
	if numeric(cell) {
		return pad + cell
	}
	return cell + pad
}

// numeric reports whether s looks like a number, a percentage or ∞.
func numeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if s == "∞" || s == "-∞" {
		return true
	}
	for i, r := range s {
		switch {
		case unicode.IsDigit(r), r == '.', r == ',':
		case r == '-' && i == 0:
		case r == '%' && i == len(s)-1:
		default:
			return false
		}
	}
	return true
}
