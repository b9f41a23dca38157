// AngelaMos | 2026
// entity.go

package recipe

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/recipebox/recipebox/internal/catalog"
)

type Recipe struct {
	ID          string          `db:"id"`
	UserID      string          `db:"user_id"`
	Title       string          `db:"title"`
	TimeMinutes int             `db:"time_minutes"`
	Price       decimal.Decimal `db:"price"`
	Link        string          `db:"link"`
	ImagePath   *string         `db:"image_path"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`

	// Relation projections, populated per representation: ids for lists,
	// full items for detail.
	TagIDs        []string       `db:"-"`
	IngredientIDs []string       `db:"-"`
	Tags          []catalog.Item `db:"-"`
	Ingredients   []catalog.Item `db:"-"`
}
