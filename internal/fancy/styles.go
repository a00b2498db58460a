package fancy

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorRoot).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorHeader).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorBranch)

	ControlStyle = lipgloss.NewStyle().
			Foreground(ColorControl)

	LayerStyle = lipgloss.NewStyle().
			Foreground(ColorLayer)

	StyleItemStyle = lipgloss.NewStyle().
			Foreground(ColorStyle)

	ScriptStyle = lipgloss.NewStyle().
			Foreground(ColorScript)

	CountStyle = lipgloss.NewStyle().
			Foreground(ColorCount)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// ControlText styles a control name
func ControlText(text string) string {
	return ControlStyle.Render(text)
}

// LayerText styles a layer ID
func LayerText(text string) string {
	return LayerStyle.Render(text)
}

// LayerList styles a list of layer IDs, or "none"
func LayerList(ids []string) string {
	if len(ids) == 0 {
		return "none"
	}
	formatted := make([]string, len(ids))
	for i, id := range ids {
		formatted[i] = LayerStyle.Render(id)
	}
	return strings.Join(formatted, ", ")
}

// StyleItemText styles a basemap style name
func StyleItemText(text string) string {
	return StyleItemStyle.Render(text)
}

// ScriptText styles a callback script description
func ScriptText(text string) string {
	return ScriptStyle.Render(text)
}

// ValidText styles valid status text (green)
func ValidText(text string) string {
	return ControlStyle.Render(text)
}

// ErrorText styles error text (red)
func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}

// PathText styles file paths (gray)
func PathText(text string) string {
	return InfoStyle.Render(text)
}

// CountText styles count numbers (cyan)
func CountText(text string) string {
	return CountStyle.Render(text)
}

// FormatSection renders a section header with an optional count
func FormatSection(name string, count int) string {
	if count <= 0 {
		return HeaderStyle.Render(name)
	}
	return HeaderStyle.Render(fmt.Sprintf("%s (%d)", name, count))
}

// TruncateString truncates a string if it exceeds maxLength
func TruncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}
