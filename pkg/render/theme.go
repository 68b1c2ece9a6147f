package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles used for legend and annotation text. Cell
// swatches carry their own escape sequences and are not themed.
type Theme struct {
	Name   string
	Header lipgloss.Style
	Muted  lipgloss.Style
	Bold   lipgloss.Style
}

// DefaultTheme returns the standard legend styling.
func DefaultTheme() Theme {
	return Theme{
		Name:   "default",
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")), // blue
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),           // gray
		Bold:   lipgloss.NewStyle().Bold(true),
	}
}

// MonoTheme returns an unstyled theme, used when colors are disabled.
func MonoTheme() Theme {
	return Theme{
		Name:   "mono",
		Header: lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle(),
		Bold:   lipgloss.NewStyle(),
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	if name == "mono" {
		return MonoTheme()
	}
	return DefaultTheme()
}
