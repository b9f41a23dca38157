// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/recipebox/recipebox/internal/core"
)

// ContentCounts is a staff-facing snapshot of how much data the service
// holds.
type ContentCounts struct {
	Users       int64 `db:"users" json:"users"`
	Recipes     int64 `db:"recipes" json:"recipes"`
	Tags        int64 `db:"tags" json:"tags"`
	Ingredients int64 `db:"ingredients" json:"ingredients"`
}

type Repository interface {
	CountContent(ctx context.Context) (*ContentCounts, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) CountContent(ctx context.Context) (*ContentCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users)       AS users,
			(SELECT COUNT(*) FROM recipes)     AS recipes,
			(SELECT COUNT(*) FROM tags)        AS tags,
			(SELECT COUNT(*) FROM ingredients) AS ingredients`

	var counts ContentCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count content: %w", err)
	}

	return &counts, nil
}
