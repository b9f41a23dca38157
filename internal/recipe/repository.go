// AngelaMos | 2026
// repository.go

package recipe

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/recipebox/recipebox/internal/catalog"
	"github.com/recipebox/recipebox/internal/core"
)

// RelationUpdate describes what to do with a recipe's relation sets: nil
// leaves a set untouched, a (possibly empty) slice replaces it entirely.
type RelationUpdate struct {
	Tags        *[]string
	Ingredients *[]string
}

type Repository interface {
	Create(ctx context.Context, rec *Recipe, tagIDs, ingredientIDs []string) error
	ListByOwner(ctx context.Context, userID string) ([]Recipe, error)
	GetByID(ctx context.Context, id string) (*Recipe, error)
	Update(ctx context.Context, rec *Recipe, rel RelationUpdate) error
	Delete(ctx context.Context, id string) error
	SetImagePath(ctx context.Context, id, relPath string) (*string, error)
}

// The recipe repository holds the concrete *sqlx.DB rather than core.DBTX
// because relation replacement spans multiple statements and must run inside
// a transaction.
type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	rec *Recipe,
	tagIDs, ingredientIDs []string,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO recipes (id, user_id, title, time_minutes, price, link)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at, updated_at`

		err := tx.GetContext(ctx, rec, query,
			rec.ID,
			rec.UserID,
			rec.Title,
			rec.TimeMinutes,
			rec.Price,
			rec.Link,
		)
		if err != nil {
			return fmt.Errorf("create recipe: %w", err)
		}

		if err := replaceRelations(ctx, tx, relTags, rec.ID, tagIDs); err != nil {
			return err
		}

		return replaceRelations(ctx, tx, relIngredients, rec.ID, ingredientIDs)
	})
}

func (r *repository) ListByOwner(
	ctx context.Context,
	userID string,
) ([]Recipe, error) {
	query := `
		SELECT id, user_id, title, time_minutes, price, link, image_path,
		       created_at, updated_at
		FROM recipes
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC`

	recipes := []Recipe{}
	if err := r.db.SelectContext(ctx, &recipes, query, userID); err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	if len(recipes) == 0 {
		return recipes, nil
	}

	ids := make([]string, 0, len(recipes))
	for _, rec := range recipes {
		ids = append(ids, rec.ID)
	}

	tagIDs, err := r.relationIDs(ctx, relTags, ids)
	if err != nil {
		return nil, err
	}

	ingredientIDs, err := r.relationIDs(ctx, relIngredients, ids)
	if err != nil {
		return nil, err
	}

	for i := range recipes {
		recipes[i].TagIDs = tagIDs[recipes[i].ID]
		recipes[i].IngredientIDs = ingredientIDs[recipes[i].ID]
	}

	return recipes, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Recipe, error) {
	query := `
		SELECT id, user_id, title, time_minutes, price, link, image_path,
		       created_at, updated_at
		FROM recipes
		WHERE id = $1`

	var rec Recipe
	err := r.db.GetContext(ctx, &rec, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get recipe: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	rec.Tags, err = r.relatedItems(ctx, relTags, id)
	if err != nil {
		return nil, err
	}

	rec.Ingredients, err = r.relatedItems(ctx, relIngredients, id)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (r *repository) Update(
	ctx context.Context,
	rec *Recipe,
	rel RelationUpdate,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			UPDATE recipes
			SET title = $2, time_minutes = $3, price = $4, link = $5,
			    updated_at = NOW()
			WHERE id = $1
			RETURNING updated_at`

		err := tx.GetContext(ctx, &rec.UpdatedAt, query,
			rec.ID,
			rec.Title,
			rec.TimeMinutes,
			rec.Price,
			rec.Link,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("update recipe: %w", core.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("update recipe: %w", err)
		}

		if rel.Tags != nil {
			if err := replaceRelations(ctx, tx, relTags, rec.ID, *rel.Tags); err != nil {
				return err
			}
		}

		if rel.Ingredients != nil {
			if err := replaceRelations(ctx, tx, relIngredients, rec.ID, *rel.Ingredients); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete recipe: %w", core.ErrNotFound)
	}

	return nil
}

// SetImagePath stores the new image reference and returns the previous one so
// the caller can clean up the replaced file.
func (r *repository) SetImagePath(
	ctx context.Context,
	id, relPath string,
) (*string, error) {
	var previous *string

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &previous,
			`SELECT image_path FROM recipes WHERE id = $1`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("set image path: %w", core.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("set image path: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE recipes SET image_path = $2, updated_at = NOW() WHERE id = $1`,
			id, relPath)
		if err != nil {
			return fmt.Errorf("set image path: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return previous, nil
}

// relation describes one of the two M2M join tables.
type relation struct {
	joinTable   string
	joinColumn  string
	entityTable string
}

var (
	relTags = relation{
		joinTable:   "recipe_tags",
		joinColumn:  "tag_id",
		entityTable: "tags",
	}
	relIngredients = relation{
		joinTable:   "recipe_ingredients",
		joinColumn:  "ingredient_id",
		entityTable: "ingredients",
	}
)

// replaceRelations swaps a recipe's relation set for exactly the given ids.
// Ids are resolved against the global entity table, not owner-filtered.
func replaceRelations(
	ctx context.Context,
	tx *sqlx.Tx,
	rel relation,
	recipeID string,
	ids []string,
) error {
	_, err := tx.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE recipe_id = $1`, rel.joinTable),
		recipeID)
	if err != nil {
		return fmt.Errorf("clear %s: %w", rel.joinTable, err)
	}

	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE id IN (?)`, rel.entityTable),
		ids,
	)
	if err != nil {
		return fmt.Errorf("build %s lookup: %w", rel.entityTable, err)
	}

	var count int
	if err := tx.GetContext(ctx, &count, tx.Rebind(query), args...); err != nil {
		return fmt.Errorf("resolve %s ids: %w", rel.entityTable, err)
	}

	if count != len(ids) {
		return fmt.Errorf(
			"unknown %s id in relation set: %w",
			rel.entityTable,
			core.ErrInvalidInput,
		)
	}

	insert := fmt.Sprintf(
		`INSERT INTO %s (recipe_id, %s) VALUES ($1, $2)`,
		rel.joinTable,
		rel.joinColumn,
	)
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, insert, recipeID, id); err != nil {
			return fmt.Errorf("attach %s: %w", rel.joinColumn, err)
		}
	}

	return nil
}

type relationRow struct {
	RecipeID string `db:"recipe_id"`
	RefID    string `db:"ref_id"`
}

func (r *repository) relationIDs(
	ctx context.Context,
	rel relation,
	recipeIDs []string,
) (map[string][]string, error) {
	query, args, err := sqlx.In(
		fmt.Sprintf(
			`SELECT recipe_id, %s AS ref_id FROM %s WHERE recipe_id IN (?)`,
			rel.joinColumn,
			rel.joinTable,
		),
		recipeIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("build %s lookup: %w", rel.joinTable, err)
	}

	rows := []relationRow{}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load %s: %w", rel.joinTable, err)
	}

	result := make(map[string][]string, len(recipeIDs))
	for _, row := range rows {
		result[row.RecipeID] = append(result[row.RecipeID], row.RefID)
	}

	return result, nil
}

func (r *repository) relatedItems(
	ctx context.Context,
	rel relation,
	recipeID string,
) ([]catalog.Item, error) {
	query := fmt.Sprintf(`
		SELECT e.id, e.user_id, e.name, e.created_at
		FROM %s e
		JOIN %s j ON j.%s = e.id
		WHERE j.recipe_id = $1
		ORDER BY e.name DESC, e.created_at ASC`,
		rel.entityTable, rel.joinTable, rel.joinColumn)

	items := []catalog.Item{}
	if err := r.db.SelectContext(ctx, &items, query, recipeID); err != nil {
		return nil, fmt.Errorf("load %s items: %w", rel.entityTable, err)
	}

	return items, nil
}
