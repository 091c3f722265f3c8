// Package catalog joins the reference collections and filters the resulting products.
//
// Everything here is pure: inputs are never mutated and results depend only on arguments.
package catalog

import (
	"github.com/Veraticus/catalog-browser/internal/common"
	"github.com/Veraticus/catalog-browser/internal/model"
)

// BuildEnrichedProducts resolves each product's category and that category's owner.
// The output keeps product order. The first unresolved reference aborts the build
// with a *common.IntegrityError.
func BuildEnrichedProducts(products []model.Product, categories []model.Category, users []model.User) ([]model.EnrichedProduct, error) {
	categoriesByID := make(map[int]model.Category, len(categories))
	for _, c := range categories {
		if _, seen := categoriesByID[c.ID]; !seen {
			categoriesByID[c.ID] = c
		}
	}

	usersByID := make(map[int]model.User, len(users))
	for _, u := range users {
		if _, seen := usersByID[u.ID]; !seen {
			usersByID[u.ID] = u
		}
	}

	enriched := make([]model.EnrichedProduct, 0, len(products))
	for _, p := range products {
		category, ok := categoriesByID[p.CategoryID]
		if !ok {
			return nil, common.NewIntegrityError("product", p.ID, "category", p.CategoryID)
		}

		owner, ok := usersByID[category.OwnerID]
		if !ok {
			return nil, common.NewIntegrityError("category", category.ID, "user", category.OwnerID)
		}

		enriched = append(enriched, model.EnrichedProduct{
			Product:  p,
			Category: category,
			User:     owner,
		})
	}

	return enriched, nil
}

// Build joins a whole dataset.
func Build(ds model.Dataset) ([]model.EnrichedProduct, error) {
	return BuildEnrichedProducts(ds.Products, ds.Categories, ds.Users)
}
