package catalog

import "github.com/Veraticus/catalog-browser/internal/model"

func romaFruits() model.Dataset {
	return model.Dataset{
		Users: []model.User{
			{ID: 1, Name: "Roma", Sex: model.SexMale},
		},
		Categories: []model.Category{
			{ID: 1, Title: "Fruits", Icon: "🍎", OwnerID: 1},
		},
		Products: []model.Product{
			{ID: 1, Name: "Apple", CategoryID: 1},
			{ID: 2, Name: "Banana", CategoryID: 1},
		},
	}
}

func groceryStore() model.Dataset {
	return model.Dataset{
		Users: []model.User{
			{ID: 1, Name: "Roma", Sex: model.SexMale},
			{ID: 2, Name: "Anna", Sex: model.SexFemale},
			{ID: 3, Name: "Max", Sex: model.SexMale},
		},
		Categories: []model.Category{
			{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
			{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
			{ID: 3, Title: "Fruits", Icon: "🍏", OwnerID: 2},
			{ID: 4, Title: "Electronics", Icon: "💻", OwnerID: 1},
			{ID: 5, Title: "Clothes", Icon: "👚", OwnerID: 3},
		},
		Products: []model.Product{
			{ID: 1, Name: "Milk", CategoryID: 2},
			{ID: 2, Name: "Bread", CategoryID: 1},
			{ID: 3, Name: "Eggs", CategoryID: 1},
			{ID: 4, Name: "Jacket", CategoryID: 5},
			{ID: 5, Name: "Sugar", CategoryID: 1},
			{ID: 6, Name: "Banana", CategoryID: 3},
			{ID: 7, Name: "Beer", CategoryID: 2},
			{ID: 8, Name: "Apple", CategoryID: 3},
			{ID: 9, Name: "Laptop", CategoryID: 4},
			{ID: 10, Name: "Λογος notebook", CategoryID: 4},
		},
	}
}

func mustBuild(ds model.Dataset) []model.EnrichedProduct {
	products, err := Build(ds)
	if err != nil {
		panic(err)
	}
	return products
}

func ids(products []model.EnrichedProduct) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
