// AngelaMos | 2026
// repository.go

package catalog

import (
	"context"
	"fmt"

	"github.com/recipebox/recipebox/internal/core"
)

type Repository interface {
	Create(ctx context.Context, kind Kind, item *Item) error
	ListByOwner(ctx context.Context, kind Kind, userID string) ([]Item, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, kind Kind, item *Item) error {
	table, err := kind.Table()
	if err != nil {
		return fmt.Errorf("create %s: %w", kind, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at`, table)

	err = r.db.GetContext(ctx, &item.CreatedAt, query,
		item.ID,
		item.UserID,
		item.Name,
	)
	if err != nil {
		return fmt.Errorf("create %s: %w", kind, err)
	}

	return nil
}

// ListByOwner returns the user's items ordered name-descending; insertion
// order breaks ties deterministically.
func (r *repository) ListByOwner(
	ctx context.Context,
	kind Kind,
	userID string,
) ([]Item, error) {
	table, err := kind.Table()
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", kind, err)
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, name, created_at
		FROM %s
		WHERE user_id = $1
		ORDER BY name DESC, created_at ASC, id ASC`, table)

	items := []Item{}
	if err := r.db.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, fmt.Errorf("list %ss: %w", kind, err)
	}

	return items, nil
}
