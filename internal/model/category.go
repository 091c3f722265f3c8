package model

// Category groups products and is owned by exactly one user.
type Category struct {
	Title   string `json:"title" yaml:"title" validate:"required"`
	Icon    string `json:"icon" yaml:"icon"`
	ID      int    `json:"id" yaml:"id"`
	OwnerID int    `json:"ownerId" yaml:"ownerId"`
}

// Label returns the category as shown in the product table.
func (c Category) Label() string {
	if c.Icon == "" {
		return c.Title
	}
	return c.Icon + " - " + c.Title
}
