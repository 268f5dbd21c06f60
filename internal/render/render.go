// Package render provides the terminal presentation helpers shared by
// the supercap CLI and browser.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("242"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("45"))

	Good = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("82"))

	Bad = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196"))
)

// Table renders rows under a styled header with columns padded to
// their widest cell.
func Table(headers []string, rows [][]string) string {
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

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(Header.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for i := range headers {
		b.WriteString(Dim.Render(strings.Repeat("-", widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			b.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Chart plots a sampled series with a caption underneath.
func Chart(values []float64, caption string) string {
	plot := asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(64),
		asciigraph.Precision(3),
	)
	return plot + "\n" + Dim.Render(caption)
}

// KeyValue renders an aligned label: value line.
func KeyValue(key, value string) string {
	return fmt.Sprintf("%s %s", Dim.Render(key+":"), Value.Render(value))
}
