// AngelaMos | 2026
// service.go

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/recipebox/recipebox/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListForOwner returns only entities owned by the given user; another user's
// items are never visible here.
func (s *Service) ListForOwner(
	ctx context.Context,
	userID string,
	kind Kind,
) ([]Item, error) {
	if userID == "" {
		return nil, fmt.Errorf("list %ss: %w", kind, core.ErrUnauthorized)
	}

	return s.repo.ListByOwner(ctx, kind, userID)
}

// CreateForOwner binds a new item to the requesting user. Duplicate names per
// owner are allowed; an empty name is not.
func (s *Service) CreateForOwner(
	ctx context.Context,
	userID string,
	kind Kind,
	name string,
) (*Item, error) {
	if userID == "" {
		return nil, fmt.Errorf("create %s: %w", kind, core.ErrUnauthorized)
	}

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf(
			"create %s: name must not be empty: %w",
			kind,
			core.ErrInvalidInput,
		)
	}

	item := &Item{
		ID:     uuid.New().String(),
		UserID: userID,
		Name:   name,
	}

	if err := s.repo.Create(ctx, kind, item); err != nil {
		return nil, err
	}

	return item, nil
}
