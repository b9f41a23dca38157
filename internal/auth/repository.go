// AngelaMos | 2026
// repository.go

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/recipebox/recipebox/internal/core"
)

type Repository interface {
	// Rotate installs a fresh token for the user, replacing any previous one
	// in a single atomic statement.
	Rotate(ctx context.Context, token *Token) error
	FindByHash(ctx context.Context, tokenHash string) (*Token, error)
	FindByUserID(ctx context.Context, userID string) (*Token, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Rotate(ctx context.Context, token *Token) error {
	query := `
		INSERT INTO auth_tokens (id, user_id, token_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET id = EXCLUDED.id, token_hash = EXCLUDED.token_hash, created_at = NOW()
		RETURNING created_at`

	err := r.db.GetContext(ctx, &token.CreatedAt, query,
		token.ID,
		token.UserID,
		token.TokenHash,
	)
	if err != nil {
		return fmt.Errorf("rotate token: %w", err)
	}

	return nil
}

func (r *repository) FindByHash(
	ctx context.Context,
	tokenHash string,
) (*Token, error) {
	query := `
		SELECT id, user_id, token_hash, created_at
		FROM auth_tokens
		WHERE token_hash = $1`

	var token Token
	err := r.db.GetContext(ctx, &token, query, tokenHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find token: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find token: %w", err)
	}

	return &token, nil
}

func (r *repository) FindByUserID(
	ctx context.Context,
	userID string,
) (*Token, error) {
	query := `
		SELECT id, user_id, token_hash, created_at
		FROM auth_tokens
		WHERE user_id = $1`

	var token Token
	err := r.db.GetContext(ctx, &token, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find token by user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find token by user: %w", err)
	}

	return &token, nil
}

func (r *repository) DeleteByUserID(ctx context.Context, userID string) error {
	query := `DELETE FROM auth_tokens WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}

	return nil
}
