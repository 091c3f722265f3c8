package testutil

import "github.com/Veraticus/catalog-browser/internal/model"

// DatasetBuilder assembles reference data for tests with a fluent API.
type DatasetBuilder struct {
	ds model.Dataset
}

// NewDatasetBuilder starts an empty dataset.
func NewDatasetBuilder() *DatasetBuilder {
	return &DatasetBuilder{}
}

// WithUser adds a user.
func (b *DatasetBuilder) WithUser(id int, name string, sex model.Sex) *DatasetBuilder {
	b.ds.Users = append(b.ds.Users, model.User{ID: id, Name: name, Sex: sex})
	return b
}

// WithCategory adds a category owned by ownerID.
func (b *DatasetBuilder) WithCategory(id int, title, icon string, ownerID int) *DatasetBuilder {
	b.ds.Categories = append(b.ds.Categories, model.Category{ID: id, Title: title, Icon: icon, OwnerID: ownerID})
	return b
}

// WithProduct adds a product in categoryID.
func (b *DatasetBuilder) WithProduct(id int, name string, categoryID int) *DatasetBuilder {
	b.ds.Products = append(b.ds.Products, model.Product{ID: id, Name: name, CategoryID: categoryID})
	return b
}

// WithFruits adds the single-owner Fruits catalog: Roma owns Fruits with Apple and Banana.
func (b *DatasetBuilder) WithFruits() *DatasetBuilder {
	return b.
		WithUser(1, "Roma", model.SexMale).
		WithCategory(1, "Fruits", "🍎", 1).
		WithProduct(1, "Apple", 1).
		WithProduct(2, "Banana", 1)
}

// WithStore adds a small multi-owner store.
//
//	Roma: Drinks (Milk, Beer), Electronics (Laptop)
//	Anna: Grocery (Bread, Eggs, Sugar), Fruits (Banana, Apple)
//	Max:  Clothes (Jacket)
func (b *DatasetBuilder) WithStore() *DatasetBuilder {
	return b.
		WithUser(1, "Roma", model.SexMale).
		WithUser(2, "Anna", model.SexFemale).
		WithUser(3, "Max", model.SexMale).
		WithCategory(1, "Grocery", "🍞", 2).
		WithCategory(2, "Drinks", "🍺", 1).
		WithCategory(3, "Fruits", "🍏", 2).
		WithCategory(4, "Electronics", "💻", 1).
		WithCategory(5, "Clothes", "👚", 3).
		WithProduct(1, "Milk", 2).
		WithProduct(2, "Bread", 1).
		WithProduct(3, "Eggs", 1).
		WithProduct(4, "Jacket", 5).
		WithProduct(5, "Sugar", 1).
		WithProduct(6, "Banana", 3).
		WithProduct(7, "Beer", 2).
		WithProduct(8, "Apple", 3).
		WithProduct(9, "Laptop", 4)
}

// Build returns a copy of the assembled dataset.
func (b *DatasetBuilder) Build() model.Dataset {
	return model.Dataset{
		Users:      append([]model.User(nil), b.ds.Users...),
		Categories: append([]model.Category(nil), b.ds.Categories...),
		Products:   append([]model.Product(nil), b.ds.Products...),
	}
}
