// Package model defines the catalog records shared across the application.
package model

// Dataset holds the three reference collections exactly as they were loaded.
type Dataset struct {
	Users      []User     `json:"users" yaml:"users" validate:"dive"`
	Categories []Category `json:"categories" yaml:"categories" validate:"dive"`
	Products   []Product  `json:"products" yaml:"products" validate:"dive"`
}

// Counts returns the size of each collection.
func (d Dataset) Counts() (users, categories, products int) {
	return len(d.Users), len(d.Categories), len(d.Products)
}

// UserNames returns user names in dataset order.
func (d Dataset) UserNames() []string {
	names := make([]string, 0, len(d.Users))
	for _, u := range d.Users {
		names = append(names, u.Name)
	}
	return names
}

// CategoryTitles returns category titles in dataset order.
func (d Dataset) CategoryTitles() []string {
	titles := make([]string, 0, len(d.Categories))
	for _, c := range d.Categories {
		titles = append(titles, c.Title)
	}
	return titles
}
