package catalog

import (
	"slices"
	"strings"
	"unicode"

	"github.com/Veraticus/catalog-browser/internal/model"
)

// AllCategories is the category button that clears the category selection.
const AllCategories = "All"

// FilterState is the user's current filter selection.
//
// It is a value type: every mutator returns an updated copy and leaves the receiver
// untouched, so a presentation layer can keep it in its model and swap it atomically.
type FilterState struct {
	SelectedUser       string
	Query              string
	SelectedCategories []string
}

// SelectUser activates the user tab with the given name. An empty name selects all users.
func (s FilterState) SelectUser(name string) FilterState {
	s.SelectedUser = name
	return s
}

// SetQuery stores the search box contents with leading white space stripped.
func (s FilterState) SetQuery(text string) FilterState {
	s.Query = strings.TrimLeftFunc(text, unicode.IsSpace)
	return s
}

// ClearQuery empties the search box.
func (s FilterState) ClearQuery() FilterState {
	s.Query = ""
	return s
}

// ToggleCategory flips the membership of title in the selection.
// AllCategories clears the selection regardless of its contents.
func (s FilterState) ToggleCategory(title string) FilterState {
	if title == AllCategories {
		s.SelectedCategories = nil
		return s
	}

	idx := slices.Index(s.SelectedCategories, title)
	next := make([]string, 0, len(s.SelectedCategories)+1)
	if idx >= 0 {
		next = append(next, s.SelectedCategories[:idx]...)
		next = append(next, s.SelectedCategories[idx+1:]...)
	} else {
		next = append(next, s.SelectedCategories...)
		next = append(next, title)
	}

	if len(next) == 0 {
		next = nil
	}
	s.SelectedCategories = next
	return s
}

// Reset clears every criterion at once.
func (s FilterState) Reset() FilterState {
	return FilterState{}
}

// IsCategorySelected reports whether title is part of the selection.
func (s FilterState) IsCategorySelected(title string) bool {
	return slices.Contains(s.SelectedCategories, title)
}

// HasCategorySelection reports whether any category is selected.
func (s FilterState) HasCategorySelection() bool {
	return len(s.SelectedCategories) > 0
}

// IsActive reports whether any criterion restricts the result.
func (s FilterState) IsActive() bool {
	return s.SelectedUser != "" || s.HasCategorySelection() || NormalizeQuery(s.Query) != ""
}

// Apply filters products with the state's criteria.
func (s FilterState) Apply(products []model.EnrichedProduct) []model.EnrichedProduct {
	return FilterProducts(products, s.SelectedUser, s.SelectedCategories, s.Query)
}
