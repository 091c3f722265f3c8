// Package components contains the reusable pieces of the catalog browser UI.
package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/catalog-browser/internal/model"
	"github.com/Veraticus/catalog-browser/internal/tui/themes"
)

// EmptyMessage is shown instead of the table when no product matches.
const EmptyMessage = "No products matching selected criteria"

// ProductTableModel renders enriched products as a scrollable table.
type ProductTableModel struct {
	theme    themes.Theme
	products []model.EnrichedProduct
	table    table.Model
	width    int
	height   int
}

// NewProductTable creates a product table sized for the given area.
func NewProductTable(theme themes.Theme, width, height int) ProductTableModel {
	t := table.New(
		table.WithColumns(productColumns(width)),
		table.WithHeight(max(1, height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return ProductTableModel{
		theme:  theme,
		table:  t,
		width:  width,
		height: height,
	}
}

// SetProducts replaces the rows and keeps the cursor in range.
func (m *ProductTableModel) SetProducts(products []model.EnrichedProduct) {
	m.products = products
	m.table.SetRows(buildRows(products))
	if m.table.Cursor() >= len(products) {
		m.table.SetCursor(max(0, len(products)-1))
	}
}

// Products returns the rows currently shown.
func (m ProductTableModel) Products() []model.EnrichedProduct {
	return m.products
}

// Cursor returns the highlighted row index.
func (m ProductTableModel) Cursor() int {
	return m.table.Cursor()
}

// Focus lets the table react to navigation keys.
func (m *ProductTableModel) Focus() {
	m.table.Focus()
}

// Blur stops the table from reacting to keys.
func (m *ProductTableModel) Blur() {
	m.table.Blur()
}

// Focused reports whether the table has focus.
func (m ProductTableModel) Focused() bool {
	return m.table.Focused()
}

// Resize updates the component size.
func (m *ProductTableModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetColumns(productColumns(width))
	// header and its border take two lines
	m.table.SetHeight(max(1, height-2))
}

// Update forwards navigation to the underlying table.
func (m ProductTableModel) Update(msg tea.Msg) (ProductTableModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table, or the empty message when there are no rows.
func (m ProductTableModel) View() string {
	if len(m.products) == 0 {
		return lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Italic(true).
			Padding(1, 0).
			Render(EmptyMessage)
	}
	return m.table.View()
}

func buildRows(products []model.EnrichedProduct) []table.Row {
	rows := make([]table.Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, table.Row{
			strconv.Itoa(p.ID),
			p.Name,
			p.Category.Label(),
			p.User.Name,
		})
	}
	return rows
}

// productColumns splits the width between the columns, never below a readable minimum.
func productColumns(width int) []table.Column {
	available := max(width-8, 56)
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Product", Width: max(16, int(float64(available-6)*0.4))},
		{Title: "Category", Width: max(16, int(float64(available-6)*0.35))},
		{Title: "User", Width: max(10, int(float64(available-6)*0.25))},
	}
}
