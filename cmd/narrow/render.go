package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(8)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func render(r report, styled bool) string {
	var b strings.Builder

	header := fmt.Sprintf("%s as %s", r.input, r.source)
	if styled {
		b.WriteString(titleStyle.Render(header))
	} else {
		b.WriteString(header)
	}
	b.WriteString("\n\n")

	for _, row := range r.rows {
		mark := "lossless"
		if !row.lossless {
			mark = "lossy"
		}
		if styled {
			status := okStyle.Render(mark)
			if !row.lossless {
				status = lossStyle.Render(mark)
			}
			fmt.Fprintf(&b, "%s %-24s %s\n", typeStyle.Render(row.target), row.result, status)
		} else {
			fmt.Fprintf(&b, "%-8s %-24s %s\n", row.target, row.result, mark)
		}
	}

	fmt.Fprintf(&b, "\n%d of %d representations round-trip\n", r.lossless(), len(r.rows))
	return b.String()
}
