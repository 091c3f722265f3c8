// Package themes holds the color palettes used by the terminal UI.
package themes

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Selected      lipgloss.Style
	Highlighted   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	BorderedBox   lipgloss.Style
	// Chip is an unselected user tab or category button.
	Chip lipgloss.Style
	// ChipActive is a selected tab or button.
	ChipActive lipgloss.Style
	// ChipOutlined marks the "All" button while other categories are selected.
	ChipOutlined lipgloss.Style
	Primary      lipgloss.Color
	Muted        lipgloss.Color
	Border       lipgloss.Color
	Foreground   lipgloss.Color
	Info         lipgloss.Color
	Error        lipgloss.Color
	Warning      lipgloss.Color
	Success      lipgloss.Color
}

func newTheme(primary, foreground, muted, border, info, errColor, warning, success, selectedFg lipgloss.Color) Theme {
	return Theme{
		Primary:    primary,
		Foreground: foreground,
		Muted:      muted,
		Border:     border,
		Info:       info,
		Error:      errColor,
		Warning:    warning,
		Success:    success,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(foreground).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted),
		Normal: lipgloss.NewStyle().
			Foreground(foreground),
		Selected: lipgloss.NewStyle().
			Background(primary).
			Foreground(selectedFg).
			Bold(true),
		Highlighted: lipgloss.NewStyle().
			Background(border).
			Foreground(foreground),
		StatusInfo: lipgloss.NewStyle().
			Foreground(info).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(warning).
			Bold(true),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		Chip: lipgloss.NewStyle().
			Foreground(foreground).
			Padding(0, 1),
		ChipActive: lipgloss.NewStyle().
			Background(primary).
			Foreground(selectedFg).
			Bold(true).
			Padding(0, 1),
		ChipOutlined: lipgloss.NewStyle().
			Foreground(primary).
			Underline(true).
			Padding(0, 1),
	}
}

// Default is the default theme.
var Default = newTheme(
	lipgloss.Color("#7c3aed"),
	lipgloss.Color("#fafafa"),
	lipgloss.Color("#737373"),
	lipgloss.Color("#404040"),
	lipgloss.Color("#3b82f6"),
	lipgloss.Color("#ef4444"),
	lipgloss.Color("#f59e0b"),
	lipgloss.Color("#10b981"),
	lipgloss.Color("#fafafa"),
)

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(
	lipgloss.Color("#cba6f7"),
	lipgloss.Color("#cdd6f4"),
	lipgloss.Color("#6c7086"),
	lipgloss.Color("#45475a"),
	lipgloss.Color("#89dceb"),
	lipgloss.Color("#f38ba8"),
	lipgloss.Color("#f9e2af"),
	lipgloss.Color("#a6e3a1"),
	lipgloss.Color("#1e1e2e"),
)

var registry = map[string]Theme{
	"default":          Default,
	"catppuccin-mocha": CatppuccinMocha,
}

// GetTheme returns a theme by name, falling back to Default.
func GetTheme(name string) Theme {
	if t, ok := registry[name]; ok {
		return t
	}
	return Default
}

// Exists reports whether a theme is registered under name.
func Exists(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names lists the registered theme names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
