package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// fieldWidth aligns values in "label:  value" output
const fieldWidth = 11

const (
	colorLabel   = lipgloss.Color("#7C3AED")
	colorMatch   = lipgloss.Color("#10B981")
	colorNoMatch = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
)

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorLabel)
	matchStyle   = lipgloss.NewStyle().Foreground(colorMatch)
	noMatchStyle = lipgloss.NewStyle().Bold(true).Foreground(colorNoMatch)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
)

// field prints one aligned "label: value" line. Styles degrade to plain
// text when the output is not a terminal.
func field(w io.Writer, label, value string) {
	label += ":"
	pad := fieldWidth - len(label)
	if pad < 1 {
		pad = 1
	}
	printf(w, "%s%s%s\n", labelStyle.Render(label), strings.Repeat(" ", pad), value)
}
