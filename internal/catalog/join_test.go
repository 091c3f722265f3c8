package catalog

import (
	"errors"
	"testing"

	"github.com/Veraticus/catalog-browser/internal/common"
	"github.com/Veraticus/catalog-browser/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEnrichedProducts(t *testing.T) {
	ds := romaFruits()

	enriched, err := BuildEnrichedProducts(ds.Products, ds.Categories, ds.Users)
	require.NoError(t, err)
	require.Len(t, enriched, 2)

	assert.Equal(t, model.Product{ID: 1, Name: "Apple", CategoryID: 1}, enriched[0].Product)
	assert.Equal(t, "Fruits", enriched[0].Category.Title)
	assert.Equal(t, "🍎", enriched[0].Category.Icon)
	assert.Equal(t, "Roma", enriched[0].User.Name)
	assert.Equal(t, "Banana", enriched[1].Name)
}

func TestBuildEnrichedProducts_PreservesLengthAndOrder(t *testing.T) {
	ds := groceryStore()

	enriched, err := Build(ds)
	require.NoError(t, err)

	assert.Len(t, enriched, len(ds.Products))
	for i, p := range ds.Products {
		assert.Equal(t, p, enriched[i].Product)
		assert.Equal(t, p.CategoryID, enriched[i].Category.ID)
		assert.Equal(t, enriched[i].Category.OwnerID, enriched[i].User.ID)
	}
}

func TestBuildEnrichedProducts_ZeroAndNegativeIDs(t *testing.T) {
	users := []model.User{{ID: 0, Name: "Roma", Sex: model.SexMale}}
	categories := []model.Category{{ID: -3, Title: "Fruits", OwnerID: 0}}
	products := []model.Product{{ID: -1, Name: "Apple", CategoryID: -3}}

	enriched, err := BuildEnrichedProducts(products, categories, users)
	require.NoError(t, err)
	require.Len(t, enriched, 1)
	assert.Equal(t, "Fruits", enriched[0].Category.Title)
	assert.Equal(t, "Roma", enriched[0].User.Name)
}

func TestBuildEnrichedProducts_DoesNotMutateInputs(t *testing.T) {
	ds := groceryStore()
	before := groceryStore()

	_, err := Build(ds)
	require.NoError(t, err)
	assert.Equal(t, before, ds)
}

func TestBuildEnrichedProducts_Empty(t *testing.T) {
	enriched, err := BuildEnrichedProducts(nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, enriched)
}

func TestBuildEnrichedProducts_IntegrityFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Dataset)
		wantMsg string
	}{
		{
			name: "product with unknown category",
			mutate: func(ds *model.Dataset) {
				ds.Products = append(ds.Products, model.Product{ID: 3, Name: "Cherry", CategoryID: 42})
			},
			wantMsg: "product 3 references unknown category 42",
		},
		{
			name: "category with unknown owner",
			mutate: func(ds *model.Dataset) {
				ds.Categories[0].OwnerID = 9
			},
			wantMsg: "category 1 references unknown user 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := romaFruits()
			tt.mutate(&ds)

			enriched, err := Build(ds)
			require.Error(t, err)
			assert.Nil(t, enriched)
			assert.True(t, errors.Is(err, common.ErrUnresolvedReference))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestBuildEnrichedProducts_FailsOnFirstUnresolved(t *testing.T) {
	ds := romaFruits()
	ds.Products = []model.Product{
		{ID: 1, Name: "Apple", CategoryID: 1},
		{ID: 2, Name: "Ghost", CategoryID: 50},
		{ID: 3, Name: "Phantom", CategoryID: 60},
	}

	_, err := Build(ds)

	var integrityErr *common.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, 2, integrityErr.EntityID)
	assert.Equal(t, 50, integrityErr.RefID)
}
