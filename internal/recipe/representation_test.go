// AngelaMos | 2026
// representation_test.go

package recipe

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/recipebox/internal/catalog"
)

func sampleRecipe() *Recipe {
	imagePath := "uploads/recipe/abc.jpg"
	return &Recipe{
		ID:          "recipe-1",
		UserID:      "user-1",
		Title:       "Pancakes",
		TimeMinutes: 15,
		Price:       decimal.RequireFromString("4.50"),
		Link:        "https://example.com/pancakes",
		ImagePath:   &imagePath,
		TagIDs:      []string{"tag-1", "tag-2"},
		Tags: []catalog.Item{
			{ID: "tag-1", Name: "Breakfast"},
			{ID: "tag-2", Name: "Sweet"},
		},
		Ingredients: []catalog.Item{
			{ID: "ing-1", Name: "Flour"},
		},
		IngredientIDs: []string{"ing-1"},
	}
}

func TestRepresentationFor(t *testing.T) {
	t.Run("list carries relation ids only", func(t *testing.T) {
		result := RepresentationFor(RepresentationList, sampleRecipe())

		resp, ok := result.(RecipeResponse)
		require.True(t, ok)
		assert.Equal(t, []string{"tag-1", "tag-2"}, resp.Tags)
		assert.Equal(t, []string{"ing-1"}, resp.Ingredients)
		assert.Equal(t, "Pancakes", resp.Title)
	})

	t.Run("list normalizes nil relations to empty slices", func(t *testing.T) {
		rec := sampleRecipe()
		rec.TagIDs = nil
		rec.IngredientIDs = nil

		result := RepresentationFor(RepresentationList, rec)

		resp, ok := result.(RecipeResponse)
		require.True(t, ok)
		assert.NotNil(t, resp.Tags)
		assert.Empty(t, resp.Tags)
		assert.NotNil(t, resp.Ingredients)
		assert.Empty(t, resp.Ingredients)
	})

	t.Run("detail expands relations and includes the image", func(t *testing.T) {
		result := RepresentationFor(RepresentationDetail, sampleRecipe())

		resp, ok := result.(RecipeDetailResponse)
		require.True(t, ok)
		require.Len(t, resp.Tags, 2)
		assert.Equal(t, "Breakfast", resp.Tags[0].Name)
		require.Len(t, resp.Ingredients, 1)
		assert.Equal(t, "Flour", resp.Ingredients[0].Name)
		require.NotNil(t, resp.Image)
		assert.Equal(t, "uploads/recipe/abc.jpg", *resp.Image)
	})

	t.Run("image upload carries only id and image", func(t *testing.T) {
		result := RepresentationFor(RepresentationImageUpload, sampleRecipe())

		resp, ok := result.(RecipeImageResponse)
		require.True(t, ok)
		assert.Equal(t, "recipe-1", resp.ID)
		require.NotNil(t, resp.Image)
		assert.Equal(t, "uploads/recipe/abc.jpg", *resp.Image)
	})
}
