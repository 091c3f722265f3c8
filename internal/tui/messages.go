package tui

import "github.com/Veraticus/catalog-browser/internal/model"

// catalogLoadedMsg carries the joined catalog, or the error that stopped loading.
type catalogLoadedMsg struct {
	err      error
	source   string
	dataset  model.Dataset
	products []model.EnrichedProduct
}

// Focus identifies the section of the screen receiving keys.
type Focus int

// Focus order, cycled with Tab.
const (
	FocusUsers Focus = iota
	FocusSearch
	FocusCategories
	FocusTable
	focusCount
)

func (f Focus) String() string {
	switch f {
	case FocusUsers:
		return "Users"
	case FocusSearch:
		return "Search"
	case FocusCategories:
		return "Categories"
	case FocusTable:
		return "Products"
	default:
		return "Unknown"
	}
}
