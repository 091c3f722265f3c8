package catalog

import (
	"strings"

	"github.com/Veraticus/catalog-browser/internal/model"
	"golang.org/x/text/cases"
)

// FilterProducts keeps the products that satisfy every active criterion.
//
// An empty user name, an empty title set and a blank search text are inactive and
// restrict nothing. The result is a stable subsequence of products; the input slice
// is never modified.
func FilterProducts(products []model.EnrichedProduct, selectedUserName string, selectedCategoryTitles []string, searchText string) []model.EnrichedProduct {
	filtered := products
	filtered = ByUser(filtered, selectedUserName)
	filtered = ByCategories(filtered, selectedCategoryTitles)
	filtered = ByText(filtered, searchText)

	if len(filtered) == len(products) {
		// Never hand back the caller's backing array.
		out := make([]model.EnrichedProduct, len(products))
		copy(out, products)
		return out
	}
	return filtered
}

// ByUser keeps products whose owner name equals userName exactly.
func ByUser(products []model.EnrichedProduct, userName string) []model.EnrichedProduct {
	if userName == "" {
		return products
	}
	return keep(products, func(p model.EnrichedProduct) bool {
		return p.User.Name == userName
	})
}

// ByCategories keeps products whose category title is one of titles.
func ByCategories(products []model.EnrichedProduct, titles []string) []model.EnrichedProduct {
	if len(titles) == 0 {
		return products
	}

	set := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		set[t] = struct{}{}
	}

	return keep(products, func(p model.EnrichedProduct) bool {
		_, ok := set[p.Category.Title]
		return ok
	})
}

// ByText keeps products whose name contains the normalized search text.
// Matching is case-insensitive using Unicode case folding.
func ByText(products []model.EnrichedProduct, searchText string) []model.EnrichedProduct {
	needle := NormalizeQuery(searchText)
	if needle == "" {
		return products
	}

	folder := cases.Fold()
	return keep(products, func(p model.EnrichedProduct) bool {
		return strings.Contains(folder.String(p.Name), needle)
	})
}

// NormalizeQuery trims surrounding white space and case folds the result.
func NormalizeQuery(searchText string) string {
	trimmed := strings.TrimSpace(searchText)
	if trimmed == "" {
		return ""
	}
	return cases.Fold().String(trimmed)
}

func keep(products []model.EnrichedProduct, match func(model.EnrichedProduct) bool) []model.EnrichedProduct {
	out := make([]model.EnrichedProduct, 0, len(products))
	for _, p := range products {
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}
