// AngelaMos | 2026
// entity.go

package catalog

import (
	"fmt"
	"time"
)

// Kind selects which catalog table an operation targets. Tags and ingredients
// share shape, invariants and endpoints; only the table differs.
type Kind string

const (
	KindTag        Kind = "tag"
	KindIngredient Kind = "ingredient"
)

func (k Kind) Table() (string, error) {
	switch k {
	case KindTag:
		return "tags", nil
	case KindIngredient:
		return "ingredients", nil
	default:
		return "", fmt.Errorf("unknown catalog kind %q", string(k))
	}
}

// Item is a Tag or an Ingredient. Ownership is set at creation and never
// changes.
type Item struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}
