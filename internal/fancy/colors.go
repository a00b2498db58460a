// Package fancy renders configuration trees and tables for the terminal.
package fancy

import "github.com/charmbracelet/lipgloss"

// Palette, keyed by what is being drawn rather than by hue.
var (
	ColorRoot    = lipgloss.Color("39")
	ColorHeader  = lipgloss.Color("15")
	ColorInfo    = lipgloss.Color("250")
	ColorBranch  = lipgloss.Color("240")
	ColorControl = lipgloss.Color("82")
	ColorLayer   = lipgloss.Color("201")
	ColorStyle   = lipgloss.Color("208")
	ColorScript  = lipgloss.Color("228")
	ColorCount   = lipgloss.Color("45")
	ColorError   = lipgloss.Color("196")
)
