// Package tui implements the interactive catalog browser on top of Bubble Tea.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/catalog-browser/internal/catalog"
	"github.com/Veraticus/catalog-browser/internal/common"
	"github.com/Veraticus/catalog-browser/internal/model"
	"github.com/Veraticus/catalog-browser/internal/tui/components"
	"github.com/Veraticus/catalog-browser/internal/tui/themes"
)

// Model holds the main TUI state.
type Model struct {
	theme      themes.Theme
	err        error
	source     string
	help       help.Model
	keymap     KeyMap
	config     Config
	users      []model.User
	categories []model.Category
	products   []model.EnrichedProduct
	visible    []model.EnrichedProduct
	filters    catalog.FilterState
	search     textinput.Model
	table      components.ProductTableModel
	summary    components.SummaryPanelModel
	focus      Focus
	// userCursor and categoryCursor index the rendered chips; 0 is the "All" chip.
	userCursor     int
	categoryCursor int
	width          int
	height         int
	ready          bool
	quitting       bool
	showHelp       bool
}

// New creates a model from the given options.
func New(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

func newModel(cfg Config) Model {
	search := textinput.New()
	search.Placeholder = "Search products..."
	search.Prompt = "> "

	m := Model{
		config:  cfg,
		keymap:  DefaultKeyMap(),
		theme:   cfg.Theme,
		help:    help.New(),
		search:  search,
		table:   components.NewProductTable(cfg.Theme, cfg.Width, cfg.Height),
		summary: components.NewSummaryPanel(cfg.Theme),
		focus:   FocusUsers,
		width:   cfg.Width,
		height:  cfg.Height,
	}
	m.help.ShowAll = cfg.ShowHelp
	m.showHelp = cfg.ShowHelp
	m.handleResize()
	return m
}

// Init starts loading the catalog.
func (m Model) Init() tea.Cmd {
	if m.config.Dataset != nil {
		return useDataset(*m.config.Dataset)
	}
	return m.loadCatalog()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case catalogLoadedMsg:
		m.handleCatalogLoaded(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// cursor blink and other textinput internals
	if m.focus == FocusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Filters returns the current filter state.
func (m Model) Filters() catalog.FilterState {
	return m.filters
}

// Visible returns the products that pass the current filters.
func (m Model) Visible() []model.EnrichedProduct {
	return m.visible
}

// Focused returns the section receiving keys.
func (m Model) Focused() Focus {
	return m.focus
}

// Err returns the error that stopped the catalog from loading.
func (m Model) Err() error {
	return m.err
}

// Ready reports whether loading has finished.
func (m Model) Ready() bool {
	return m.ready
}

func (m *Model) handleCatalogLoaded(msg catalogLoadedMsg) {
	m.ready = true
	m.source = msg.source
	if msg.err != nil {
		m.err = msg.err
		return
	}

	m.users = msg.dataset.Users
	m.categories = uniqueTitles(msg.dataset.Categories)
	m.products = msg.products
	m.refilter()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.ready || m.err != nil {
		if key.Matches(msg, m.keymap.Quit) || msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Reset):
		m.resetFilters()
		return m, nil
	case key.Matches(msg, m.keymap.NextFocus):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keymap.PrevFocus):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	if m.focus == FocusSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.handleResize()
		return m, nil
	case key.Matches(msg, m.keymap.Search):
		return m, m.setFocus(FocusSearch)
	case key.Matches(msg, m.keymap.ClearSearch):
		m.clearSearch()
		return m, nil
	}

	switch m.focus {
	case FocusUsers:
		m.handleUserKey(msg)
	case FocusCategories:
		m.handleCategoryKey(msg)
	case FocusTable:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ClearSearch):
		m.clearSearch()
		return m, nil
	case msg.Type == tea.KeyEnter:
		return m, m.setFocus(FocusTable)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyQuery(m.search.Value())
	return m, cmd
}

// handleUserKey moves between the user tabs; the tab under the cursor is selected.
func (m *Model) handleUserKey(msg tea.KeyMsg) {
	tabs := len(m.users) + 1
	switch {
	case key.Matches(msg, m.keymap.Left):
		m.userCursor = (m.userCursor + tabs - 1) % tabs
	case key.Matches(msg, m.keymap.Right):
		m.userCursor = (m.userCursor + 1) % tabs
	case key.Matches(msg, m.keymap.Select):
	default:
		return
	}

	name := ""
	if m.userCursor > 0 {
		name = m.users[m.userCursor-1].Name
	}
	m.filters = m.filters.SelectUser(name)
	m.refilter()
}

func (m *Model) handleCategoryKey(msg tea.KeyMsg) {
	buttons := len(m.categories) + 1
	switch {
	case key.Matches(msg, m.keymap.Left):
		m.categoryCursor = (m.categoryCursor + buttons - 1) % buttons
	case key.Matches(msg, m.keymap.Right):
		m.categoryCursor = (m.categoryCursor + 1) % buttons
	case key.Matches(msg, m.keymap.Select):
		title := catalog.AllCategories
		if m.categoryCursor > 0 {
			title = m.categories[m.categoryCursor-1].Title
		}
		m.filters = m.filters.ToggleCategory(title)
		m.refilter()
	}
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f

	m.table.Blur()
	m.search.Blur()

	switch f {
	case FocusSearch:
		return m.search.Focus()
	case FocusTable:
		m.table.Focus()
	}
	return nil
}

// applyQuery stores the typed text, dropping leading white space from the input box.
func (m *Model) applyQuery(text string) {
	m.filters = m.filters.SetQuery(text)
	if m.filters.Query != text {
		m.search.SetValue(m.filters.Query)
	}
	m.refilter()
}

func (m *Model) clearSearch() {
	m.filters = m.filters.ClearQuery()
	m.search.SetValue("")
	m.refilter()
}

func (m *Model) resetFilters() {
	m.filters = m.filters.Reset()
	m.search.SetValue("")
	m.userCursor = 0
	m.categoryCursor = 0
	m.refilter()
}

// refilter runs the filters over the full catalog.
func (m *Model) refilter() {
	m.visible = m.filters.Apply(m.products)
	m.table.SetProducts(m.visible)
	m.summary.SetProducts(m.visible, len(m.products))

	common.LogDebug("Filters applied", common.Fields{
		"user":       m.filters.SelectedUser,
		"categories": m.filters.SelectedCategories,
		"query":      m.filters.Query,
		"visible":    len(m.visible),
	})
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	tableWidth := m.width - 4
	if m.summaryVisible() {
		tableWidth -= summaryWidth + 3
		m.summary.SetCompact(false)
		m.summary.Resize(summaryWidth)
	} else {
		m.summary.SetCompact(true)
	}

	chrome := chromeHeight
	if m.showHelp {
		chrome += 4
	}
	m.table.Resize(tableWidth, max(3, m.height-chrome))
	m.help.Width = max(0, m.width-4)
}

func (m Model) summaryVisible() bool {
	return m.config.ShowSummary && m.width >= wideLayoutWidth
}

// uniqueTitles keeps the first category per title; buttons toggle by title.
func uniqueTitles(categories []model.Category) []model.Category {
	seen := make(map[string]struct{}, len(categories))
	out := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if _, ok := seen[c.Title]; ok {
			continue
		}
		seen[c.Title] = struct{}{}
		out = append(out, c)
	}
	return out
}
