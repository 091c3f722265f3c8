package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/catalog-browser/internal/tui/themes"
)

// ChipState describes how a single tab or button is drawn.
type ChipState int

// Chip states.
const (
	ChipIdle ChipState = iota
	ChipActive
	ChipOutlined
)

// Chip is one entry of a ChipBar.
type Chip struct {
	// Color overrides the foreground of an idle chip.
	Color lipgloss.TerminalColor
	Label string
	State ChipState
}

// ChipBar renders a labelled row of chips such as the user tabs or category buttons.
type ChipBar struct {
	theme   themes.Theme
	label   string
	chips   []Chip
	cursor  int
	focused bool
}

// NewChipBar creates a chip bar.
func NewChipBar(theme themes.Theme, label string, chips []Chip, cursor int, focused bool) ChipBar {
	return ChipBar{
		theme:   theme,
		label:   label,
		chips:   chips,
		cursor:  cursor,
		focused: focused,
	}
}

// View renders the bar, wrapping chips to the next line past width.
func (b ChipBar) View(width int) string {
	labelStyle := b.theme.Subtitle
	if b.focused {
		labelStyle = b.theme.StatusInfo
	}
	label := labelStyle.Render(b.label + ":")

	lines := []string{}
	line := label
	for i, chip := range b.chips {
		rendered := b.renderChip(i, chip)
		if width > 0 && lipgloss.Width(line)+1+lipgloss.Width(rendered) > width && line != "" {
			lines = append(lines, line)
			line = strings.Repeat(" ", lipgloss.Width(label))
		}
		line += " " + rendered
	}
	lines = append(lines, line)

	return strings.Join(lines, "\n")
}

func (b ChipBar) renderChip(i int, chip Chip) string {
	var style lipgloss.Style
	switch chip.State {
	case ChipActive:
		style = b.theme.ChipActive
	case ChipOutlined:
		style = b.theme.ChipOutlined
	default:
		style = b.theme.Chip
		if chip.Color != nil {
			style = style.Foreground(chip.Color)
		}
	}

	text := chip.Label
	if b.focused && i == b.cursor {
		text = "›" + text + "‹"
	}
	return style.Render(text)
}
