// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/recipebox/recipebox/internal/core"
)

type stubVerifier struct {
	identity *Identity
}

func (s *stubVerifier) VerifyToken(
	_ context.Context,
	token string,
) (*Identity, error) {
	if token == "good" {
		return s.identity, nil
	}
	return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
}

func okHandler(t *testing.T, wantUserID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantUserID, GetUserID(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
}

func TestExtractToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"token scheme", "Token abc123", "abc123"},
		{"bearer scheme", "Bearer abc123", "abc123"},
		{"case insensitive scheme", "token abc123", "abc123"},
		{"missing header", "", ""},
		{"unknown scheme", "Basic abc123", ""},
		{"scheme without value", "Token", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			assert.Equal(t, tc.want, ExtractToken(req))
		})
	}
}

func TestAuthenticator(t *testing.T) {
	verifier := &stubVerifier{identity: &Identity{UserID: "user-1"}}
	protected := Authenticator(verifier)(okHandler(t, "user-1"))

	t.Run("valid token passes identity through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token good")
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token is 401 with the same shape", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token bad")
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid authentication token")
	})
}

func TestRequireStaff(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := RequireStaff(next)

	t.Run("staff identity passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), IdentityKey,
			&Identity{UserID: "user-1", Staff: true})
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-staff identity is 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), IdentityKey,
			&Identity{UserID: "user-1"})
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no identity is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
