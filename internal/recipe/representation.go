// AngelaMos | 2026
// representation.go

package recipe

import (
	"github.com/shopspring/decimal"

	"github.com/recipebox/recipebox/internal/catalog"
)

// RepresentationKind selects the wire shape of a recipe explicitly instead of
// deriving it from the handler action.
type RepresentationKind int

const (
	// RepresentationList carries tag/ingredient ids only.
	RepresentationList RepresentationKind = iota
	// RepresentationDetail expands tags/ingredients to nested objects.
	RepresentationDetail
	// RepresentationImageUpload carries just the id and image reference.
	RepresentationImageUpload
)

type RecipeResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
	Link        string          `json:"link"`
	Tags        []string        `json:"tags"`
	Ingredients []string        `json:"ingredients"`
}

type RecipeDetailResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	TimeMinutes int                    `json:"time_minutes"`
	Price       decimal.Decimal        `json:"price"`
	Link        string                 `json:"link"`
	Image       *string                `json:"image"`
	Tags        []catalog.ItemResponse `json:"tags"`
	Ingredients []catalog.ItemResponse `json:"ingredients"`
}

type RecipeImageResponse struct {
	ID    string  `json:"id"`
	Image *string `json:"image"`
}

// RepresentationFor is a pure mapping from a loaded recipe to its DTO; it
// performs no I/O and relies on the relation projections already populated.
func RepresentationFor(kind RepresentationKind, r *Recipe) any {
	switch kind {
	case RepresentationDetail:
		return RecipeDetailResponse{
			ID:          r.ID,
			Title:       r.Title,
			TimeMinutes: r.TimeMinutes,
			Price:       r.Price,
			Link:        r.Link,
			Image:       r.ImagePath,
			Tags:        catalog.ToItemResponseList(r.Tags),
			Ingredients: catalog.ToItemResponseList(r.Ingredients),
		}
	case RepresentationImageUpload:
		return RecipeImageResponse{
			ID:    r.ID,
			Image: r.ImagePath,
		}
	default:
		tags := r.TagIDs
		if tags == nil {
			tags = []string{}
		}
		ingredients := r.IngredientIDs
		if ingredients == nil {
			ingredients = []string{}
		}
		return RecipeResponse{
			ID:          r.ID,
			Title:       r.Title,
			TimeMinutes: r.TimeMinutes,
			Price:       r.Price,
			Link:        r.Link,
			Tags:        tags,
			Ingredients: ingredients,
		}
	}
}
