// AngelaMos | 2026
// dto.go

package recipe

import (
	"github.com/shopspring/decimal"
)

// CreateRecipeRequest carries the full recipe payload. It backs both POST and
// PUT, so a PUT with omitted tags or ingredients clears those sets.
type CreateRecipeRequest struct {
	Title       string           `json:"title" validate:"required,max=255"`
	TimeMinutes int              `json:"time_minutes" validate:"required,gt=0"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Link        string           `json:"link" validate:"omitempty,max=255"`
	Tags        []string         `json:"tags" validate:"omitempty,dive,uuid"`
	Ingredients []string         `json:"ingredients" validate:"omitempty,dive,uuid"`
}

// PatchRecipeRequest is all pointers so absent fields are left untouched.
type PatchRecipeRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=255"`
	TimeMinutes *int             `json:"time_minutes" validate:"omitempty,gt=0"`
	Price       *decimal.Decimal `json:"price"`
	Link        *string          `json:"link" validate:"omitempty,max=255"`
	Tags        *[]string        `json:"tags" validate:"omitempty,dive,uuid"`
	Ingredients *[]string        `json:"ingredients" validate:"omitempty,dive,uuid"`
}
