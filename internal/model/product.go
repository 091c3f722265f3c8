package model

// Product is a catalog entry that belongs to one category.
type Product struct {
	Name       string `json:"name" yaml:"name" validate:"required"`
	ID         int    `json:"id" yaml:"id"`
	CategoryID int    `json:"categoryId" yaml:"categoryId"`
}

// EnrichedProduct is a product joined with its category and the category's owner.
// Values are built once from the reference data and never mutated.
type EnrichedProduct struct {
	Category Category
	User     User
	Product
}
