package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/catalog-browser/internal/model"
	"github.com/Veraticus/catalog-browser/internal/tui/themes"
)

// SummaryPanelModel shows how much of the catalog the current filters let through.
type SummaryPanelModel struct {
	theme       themes.Theme
	perCategory map[string]int
	perUser     map[string]int
	progressBar progress.Model
	shown       int
	total       int
	width       int
	compact     bool
}

// NewSummaryPanel creates a summary panel.
func NewSummaryPanel(theme themes.Theme) SummaryPanelModel {
	bar := progress.New(progress.WithSolidFill(string(theme.Primary)))
	bar.ShowPercentage = false

	return SummaryPanelModel{
		theme:       theme,
		perCategory: map[string]int{},
		perUser:     map[string]int{},
		progressBar: bar,
	}
}

// SetProducts recomputes the counts for the visible products out of total.
func (m *SummaryPanelModel) SetProducts(visible []model.EnrichedProduct, total int) {
	m.shown = len(visible)
	m.total = total
	m.perCategory = make(map[string]int)
	m.perUser = make(map[string]int)
	for _, p := range visible {
		m.perCategory[p.Category.Label()]++
		m.perUser[p.User.Name]++
	}
}

// SetCompact switches between the one-line and the panel layout.
func (m *SummaryPanelModel) SetCompact(compact bool) {
	m.compact = compact
}

// Resize updates the component width.
func (m *SummaryPanelModel) Resize(width int) {
	m.width = width
	m.progressBar.Width = max(10, min(width-2, 30))
}

// Ratio is the share of the catalog currently shown.
func (m SummaryPanelModel) Ratio() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.shown) / float64(m.total)
}

// View renders the panel.
func (m SummaryPanelModel) View() string {
	if m.compact {
		return m.theme.Subtitle.Render(fmt.Sprintf("%d of %d products", m.shown, m.total))
	}

	sections := []string{
		m.theme.Subtitle.Render("Shown"),
		m.progressBar.ViewAs(m.Ratio()),
		m.theme.Normal.Render(fmt.Sprintf("%d of %d products", m.shown, m.total)),
		"",
		m.theme.Subtitle.Render("By user"),
		m.theme.Normal.Render(renderCounts(m.perUser)),
		"",
		m.theme.Subtitle.Render("By category"),
		m.theme.Normal.Render(renderCounts(m.perCategory)),
	}

	return lipgloss.NewStyle().Width(m.width).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

// renderCounts lists counts in descending order, ties by name.
func renderCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "-"
	}

	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, entry{name: name, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%-16s %d", e.name, e.count))
	}
	return strings.Join(lines, "\n")
}
