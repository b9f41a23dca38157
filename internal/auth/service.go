// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/recipebox/recipebox/internal/core"
	"github.com/recipebox/recipebox/internal/middleware"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserInfo struct {
	ID        string
	Email     string
	Name      string
	Active    bool
	Staff     bool
	Superuser bool
}

type UserProvider interface {
	Authenticate(ctx context.Context, email, password string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
}

type Service struct {
	repo         Repository
	userProvider UserProvider
	redis        *redis.Client
	cacheTTL     time.Duration
}

func NewService(
	repo Repository,
	userProvider UserProvider,
	redisClient *redis.Client,
) *Service {
	return &Service{
		repo:         repo,
		userProvider: userProvider,
		redis:        redisClient,
		cacheTTL:     5 * time.Minute,
	}
}

// IssueToken exchanges email+password for the opaque bearer credential. A
// previous credential for the same user stops working: only the hash is
// stored, so reuse is realized as rotate-on-issue while the 1:1 binding
// holds.
func (s *Service) IssueToken(
	ctx context.Context,
	email, password string,
) (string, error) {
	info, err := s.userProvider.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, core.ErrUnauthorized) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("authenticate: %w", err)
	}

	key, err := core.GenerateTokenKey()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	previousHash := s.currentTokenHash(ctx, info.ID)
	s.evictToken(ctx, previousHash)

	token := &Token{
		ID:        uuid.New().String(),
		UserID:    info.ID,
		TokenHash: core.HashToken(key),
	}

	if err := s.repo.Rotate(ctx, token); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}

	// A verification racing the rotation can re-cache the old hash between
	// the first eviction and the row swap, so evict once more after the
	// upsert.
	s.evictToken(ctx, previousHash)

	return key, nil
}

// VerifyToken resolves a presented credential to its owner. Unknown,
// malformed and rotated-away tokens all return the same error.
func (s *Service) VerifyToken(
	ctx context.Context,
	key string,
) (*middleware.Identity, error) {
	if key == "" {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	tokenHash := core.HashToken(key)

	userID, cached := s.cachedUserID(ctx, tokenHash)
	if !cached {
		token, err := s.repo.FindByHash(ctx, tokenHash)
		if err != nil {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
		}
		userID = token.UserID
	}

	info, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	if !info.Active {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	if !cached {
		s.cacheToken(ctx, tokenHash, userID)
	}

	return &middleware.Identity{
		UserID:    info.ID,
		Email:     info.Email,
		Name:      info.Name,
		Staff:     info.Staff,
		Superuser: info.Superuser,
	}, nil
}

// RevokeToken invalidates the user's current credential.
func (s *Service) RevokeToken(ctx context.Context, userID string) error {
	previousHash := s.currentTokenHash(ctx, userID)
	s.evictToken(ctx, previousHash)

	if err := s.repo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	s.evictToken(ctx, previousHash)
	return nil
}

func cacheKey(tokenHash string) string {
	return "auth:token:" + tokenHash
}

func (s *Service) cachedUserID(
	ctx context.Context,
	tokenHash string,
) (string, bool) {
	if s.redis == nil {
		return "", false
	}

	userID, err := s.redis.Get(ctx, cacheKey(tokenHash)).Result()
	if err != nil {
		return "", false
	}

	return userID, true
}

func (s *Service) cacheToken(ctx context.Context, tokenHash, userID string) {
	if s.redis == nil {
		return
	}

	//nolint:errcheck // cache writes are best-effort
	_ = s.redis.Set(ctx, cacheKey(tokenHash), userID, s.cacheTTL).Err()
}

// currentTokenHash reports the hash of the user's stored token, or "" when
// there is none (or no cache to evict it from).
func (s *Service) currentTokenHash(ctx context.Context, userID string) string {
	if s.redis == nil {
		return ""
	}

	existing, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return ""
	}

	return existing.TokenHash
}

// evictToken drops the cached entry for a token hash so a rotated-away
// credential cannot outlive the rotation by the cache TTL.
func (s *Service) evictToken(ctx context.Context, tokenHash string) {
	if s.redis == nil || tokenHash == "" {
		return
	}

	//nolint:errcheck // cache eviction is best-effort
	_ = s.redis.Del(ctx, cacheKey(tokenHash)).Err()
}

var _ middleware.TokenVerifier = (*Service)(nil)
