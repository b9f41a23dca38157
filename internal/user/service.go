// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/recipebox/recipebox/internal/auth"
	"github.com/recipebox/recipebox/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a regular user. The email is stored lowercased and the
// password only ever persisted as an argon2id hash.
func (s *Service) Create(
	ctx context.Context,
	email, password, name string,
) (*User, error) {
	return s.create(ctx, email, password, name, false)
}

// CreateSuperuser registers a staff superuser account. Not reachable over
// HTTP; used by operational seeding.
func (s *Service) CreateSuperuser(
	ctx context.Context,
	email, password string,
) (*User, error) {
	return s.create(ctx, email, password, "", true)
}

func (s *Service) create(
	ctx context.Context,
	email, password, name string,
	superuser bool,
) (*User, error) {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return nil, fmt.Errorf(
			"create user: email must not be empty: %w",
			core.ErrInvalidInput,
		)
	}

	passwordHash, err := core.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		ID:           uuid.New().String(),
		Email:        normalized,
		PasswordHash: passwordHash,
		Name:         name,
		IsActive:     true,
		IsStaff:      superuser,
		IsSuperuser:  superuser,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Authenticate resolves email+password to a user. Unknown email, wrong
// password and inactive account all fail identically.
func (s *Service) Authenticate(
	ctx context.Context,
	email, password string,
) (*auth.UserInfo, error) {
	u, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return toUserInfo(u), nil
}

func (s *Service) authenticate(
	ctx context.Context,
	email, password string,
) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		// Burn the same argon2 work as the success path.
		_, _ = core.VerifyPasswordTimingSafe(password, nil) //nolint:errcheck // timing equalization only
		return nil, fmt.Errorf("authenticate: %w", core.ErrUnauthorized)
	}

	valid, err := core.VerifyPasswordTimingSafe(password, &u.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid || !u.IsActive {
		return nil, fmt.Errorf("authenticate: %w", core.ErrUnauthorized)
	}

	return u, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("get profile: %w", core.ErrUnauthorized)
	}

	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile applies name changes directly; a password, when provided, is
// re-hashed before persistence.
func (s *Service) UpdateProfile(
	ctx context.Context,
	userID string,
	req UpdateProfileRequest,
) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("update profile: %w", core.ErrUnauthorized)
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
		if err := s.repo.Update(ctx, u); err != nil {
			return nil, err
		}
	}

	if req.Password != nil {
		passwordHash, hashErr := core.HashPassword(*req.Password)
		if hashErr != nil {
			return nil, fmt.Errorf("hash password: %w", hashErr)
		}
		if err := s.repo.UpdatePassword(ctx, userID, passwordHash); err != nil {
			return nil, err
		}
		u.PasswordHash = passwordHash
	}

	return u, nil
}

func (s *Service) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsByEmail(ctx, NormalizeEmail(email))
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserInfo(u), nil
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Active:    u.IsActive,
		Staff:     u.IsStaff,
		Superuser: u.IsSuperuser,
	}
}

var _ auth.UserProvider = (*Service)(nil)
