// Package ui holds the lipgloss styles and small rendering helpers shared by
// the commands.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ErrorBanner renders user-visible failures, matching the inline error
	// banners of the mobile app.
	ErrorBanner = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF5F5F")).
			Padding(0, 1)

	// Success renders confirmation messages.
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5FD75F")).
		Bold(true)

	// Muted renders secondary detail.
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#808080"))

	// Heading renders section titles.
	Heading = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5FAFFF")).
		Bold(true)

	// Label renders field names in key/value output.
	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AFAFFF")).
		Width(14)
)

// Errorf renders an error banner.
func Errorf(format string, args ...any) string {
	return ErrorBanner.Render(fmt.Sprintf(format, args...))
}

// KeyValue renders aligned "label: value" lines.
func KeyValue(pairs [][2]string) string {
	var b strings.Builder
	for _, pair := range pairs {
		b.WriteString(Label.Render(pair[0]))
		b.WriteString(" ")
		b.WriteString(pair[1])
		b.WriteString("\n")
	}
	return b.String()
}

// Table renders a minimal aligned table with a styled header row.
func Table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
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
	for i, h := range header {
		b.WriteString(Heading.Render(pad(h, widths[i])))
		b.WriteString("  ")
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				b.WriteString(pad(cell, widths[i]))
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
