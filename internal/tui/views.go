package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/catalog-browser/internal/model"
	"github.com/Veraticus/catalog-browser/internal/tui/components"
)

const (
	// Title shown above the filters.
	Title = "Product Categories"

	summaryWidth    = 32
	wideLayoutWidth = 110
	// border, title, users, search, categories, spacing, status bar and help line
	chromeHeight = 12
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	return m.renderBrowser()
}

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Loading catalog..."),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(m.sourceName()),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderError renders a load or integrity failure.
func (m Model) renderError() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.StatusError.Render("Could not load catalog"),
		"",
		m.theme.Normal.Width(max(20, m.width-8)).Render(m.err.Error()),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Source: "+m.sourceName()),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press q to quit"),
	)

	return m.theme.BorderedBox.Render(content)
}

func (m Model) renderBrowser() string {
	innerWidth := max(20, m.width-4)

	body := m.table.View()
	if m.summaryVisible() {
		body = lipgloss.JoinHorizontal(
			lipgloss.Top,
			body,
			lipgloss.NewStyle().Foreground(m.theme.Border).Render(" │ "),
			m.summary.View(),
		)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render(Title),
		m.renderUserTabs(innerWidth),
		m.renderSearch(),
		m.renderCategoryButtons(innerWidth),
		"",
		body,
	)

	return m.wrapWithBorder(content)
}

// renderUserTabs renders "All" followed by one tab per user, colored by sex.
func (m Model) renderUserTabs(width int) string {
	chips := make([]components.Chip, 0, len(m.users)+1)
	chips = append(chips, components.Chip{
		Label: "All",
		State: chipState(m.filters.SelectedUser == ""),
	})
	for _, u := range m.users {
		chips = append(chips, components.Chip{
			Label: u.Name,
			State: chipState(m.filters.SelectedUser == u.Name),
			Color: m.userColor(u),
		})
	}

	return components.NewChipBar(m.theme, "Users", chips, m.userCursor, m.focus == FocusUsers).View(width)
}

// renderCategoryButtons renders the "All" button and one button per category title.
// "All" is filled while nothing is selected and outlined otherwise.
func (m Model) renderCategoryButtons(width int) string {
	allState := components.ChipActive
	if m.filters.HasCategorySelection() {
		allState = components.ChipOutlined
	}

	chips := make([]components.Chip, 0, len(m.categories)+1)
	chips = append(chips, components.Chip{Label: "All", State: allState})
	for _, c := range m.categories {
		chips = append(chips, components.Chip{
			Label: c.Label(),
			State: chipState(m.filters.IsCategorySelected(c.Title)),
		})
	}

	return components.NewChipBar(m.theme, "Categories", chips, m.categoryCursor, m.focus == FocusCategories).View(width)
}

func (m Model) renderSearch() string {
	labelStyle := m.theme.Subtitle
	if m.focus == FocusSearch {
		labelStyle = m.theme.StatusInfo
	}

	line := labelStyle.Render("Search:") + " " + m.search.View()
	if m.filters.Query != "" {
		line += "  " + lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[Esc] clear")
	}
	return line
}

// wrapWithBorder adds a border around content.
func (m Model) wrapWithBorder(content string) string {
	fullContent := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.renderStatusBar(),
		m.help.View(m.keymap),
	)

	return m.theme.BorderedBox.
		Width(max(0, m.width-2)).
		Render(fullContent)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	left := m.focus.String()
	center := fmt.Sprintf("%d of %d products", len(m.visible), len(m.products))

	right := "? Help"
	if m.filters.IsActive() {
		right = "filters active · Ctrl+R reset all filters"
	}

	totalWidth := max(0, m.width-4)
	spacing := max(2, totalWidth-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right))
	leftPad := spacing / 2
	rightPad := spacing - leftPad

	return fmt.Sprintf("%s%s%s%s%s",
		m.theme.StatusInfo.Render(left),
		strings.Repeat(" ", leftPad),
		m.theme.Normal.Render(center),
		strings.Repeat(" ", rightPad),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(right),
	)
}

func (m Model) userColor(u model.User) lipgloss.TerminalColor {
	switch u.Sex {
	case model.SexMale:
		return m.theme.Info
	case model.SexFemale:
		return m.theme.Error
	default:
		return nil
	}
}

func (m Model) sourceName() string {
	if m.source != "" {
		return m.source
	}
	if m.config.Dataset != nil {
		return "dataset"
	}
	if m.config.Source != nil {
		return m.config.Source.Name()
	}
	return "unknown"
}

func chipState(active bool) components.ChipState {
	if active {
		return components.ChipActive
	}
	return components.ChipIdle
}
