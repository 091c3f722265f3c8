package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterState_ToggleCategory(t *testing.T) {
	tests := []struct {
		name    string
		start   []string
		toggles []string
		want    []string
	}{
		{
			name:    "adds absent title",
			toggles: []string{"Fruits"},
			want:    []string{"Fruits"},
		},
		{
			name:    "removes present title",
			start:   []string{"Fruits", "Drinks"},
			toggles: []string{"Fruits"},
			want:    []string{"Drinks"},
		},
		{
			name:    "twice on empty returns to empty",
			toggles: []string{"Fruits", "Fruits"},
			want:    nil,
		},
		{
			name:    "keeps insertion order",
			toggles: []string{"Drinks", "Fruits", "Clothes"},
			want:    []string{"Drinks", "Fruits", "Clothes"},
		},
		{
			name:    "all clears selection",
			start:   []string{"Fruits", "Drinks"},
			toggles: []string{AllCategories},
			want:    nil,
		},
		{
			name:    "all on empty selection stays empty",
			toggles: []string{AllCategories},
			want:    nil,
		},
		{
			name:    "never duplicates",
			toggles: []string{"Fruits", "Drinks", "Fruits", "Fruits"},
			want:    []string{"Drinks", "Fruits"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FilterState{SelectedCategories: tt.start}
			for _, title := range tt.toggles {
				s = s.ToggleCategory(title)
			}
			assert.Equal(t, tt.want, s.SelectedCategories)
		})
	}
}

func TestFilterState_ToggleDoesNotMutateReceiver(t *testing.T) {
	original := FilterState{SelectedCategories: []string{"Fruits", "Drinks"}}

	_ = original.ToggleCategory("Fruits")
	_ = original.ToggleCategory("Clothes")

	assert.Equal(t, []string{"Fruits", "Drinks"}, original.SelectedCategories)
}

func TestFilterState_Reset(t *testing.T) {
	s := FilterState{}.
		SelectUser("Roma").
		SetQuery("milk").
		ToggleCategory("Drinks")
	assert.True(t, s.IsActive())

	s = s.Reset()

	assert.Equal(t, FilterState{}, s)
	assert.Equal(t, "", s.SelectedUser)
	assert.Equal(t, "", s.Query)
	assert.Empty(t, s.SelectedCategories)
	assert.False(t, s.IsActive())
}

func TestFilterState_SetQuery(t *testing.T) {
	s := FilterState{}.SetQuery("   app ")
	assert.Equal(t, "app ", s.Query)

	s = s.ClearQuery()
	assert.Equal(t, "", s.Query)
}

func TestFilterState_Helpers(t *testing.T) {
	s := FilterState{}
	assert.False(t, s.HasCategorySelection())
	assert.False(t, s.IsCategorySelected("Fruits"))
	assert.False(t, s.IsActive())

	s = s.ToggleCategory("Fruits")
	assert.True(t, s.HasCategorySelection())
	assert.True(t, s.IsCategorySelected("Fruits"))
	assert.True(t, s.IsActive())

	assert.False(t, FilterState{Query: "   "}.IsActive())
}

func TestFilterState_Apply(t *testing.T) {
	enriched := mustBuild(groceryStore())

	s := FilterState{}.SelectUser("Anna").ToggleCategory("Fruits")
	assert.Equal(t, []int{6, 8}, ids(s.Apply(enriched)))

	// Selecting Fruits then clicking All brings every category back.
	s = FilterState{}.ToggleCategory("Fruits").ToggleCategory(AllCategories)
	assert.Equal(t, ids(enriched), ids(s.Apply(enriched)))

	s = s.SelectUser("")
	assert.Len(t, s.Apply(enriched), len(enriched))
}
