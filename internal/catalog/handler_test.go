// AngelaMos | 2026
// handler_test.go

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/recipebox/internal/core"
	"github.com/recipebox/recipebox/internal/middleware"
)

type stubVerifier struct {
	identities map[string]*middleware.Identity
}

func (s *stubVerifier) VerifyToken(
	_ context.Context,
	token string,
) (*middleware.Identity, error) {
	if identity, ok := s.identities[token]; ok {
		return identity, nil
	}
	return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
}

func newCatalogRouter() *chi.Mux {
	service := NewService(newFakeRepository())
	handler := NewHandler(service)

	verifier := &stubVerifier{
		identities: map[string]*middleware.Identity{
			"token-1": {UserID: "user-1", Email: "one@example.com"},
			"token-2": {UserID: "user-2", Email: "two@example.com"},
		},
	}

	router := chi.NewRouter()
	router.Route("/recipe", func(r chi.Router) {
		handler.RegisterRoutes(r, middleware.Authenticator(verifier))
	})
	return router
}

func doJSON(
	router *chi.Mux,
	method, path, token, body string,
) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTagEndpoints(t *testing.T) {
	t.Run("unauthenticated list is 401", func(t *testing.T) {
		router := newCatalogRouter()

		rec := doJSON(router, http.MethodGet, "/recipe/tags", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("create then list round trips", func(t *testing.T) {
		router := newCatalogRouter()

		rec := doJSON(router, http.MethodPost, "/recipe/tags", "token-1",
			`{"name":"Dessert"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(router, http.MethodGet, "/recipe/tags", "token-1", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data []ItemResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "Dessert", resp.Data[0].Name)
	})

	t.Run("users cannot see each other's tags", func(t *testing.T) {
		router := newCatalogRouter()

		rec := doJSON(router, http.MethodPost, "/recipe/tags", "token-1",
			`{"name":"Private"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(router, http.MethodGet, "/recipe/tags", "token-2", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Private")
	})

	t.Run("empty name is 400", func(t *testing.T) {
		router := newCatalogRouter()

		rec := doJSON(router, http.MethodPost, "/recipe/tags", "token-1",
			`{"name":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestIngredientEndpoints(t *testing.T) {
	t.Run("ingredients live on their own path", func(t *testing.T) {
		router := newCatalogRouter()

		rec := doJSON(router, http.MethodPost, "/recipe/ingredients", "token-1",
			`{"name":"Salt"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(router, http.MethodGet, "/recipe/tags", "token-1", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Salt")

		rec = doJSON(router, http.MethodGet, "/recipe/ingredients", "token-1", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Salt")
	})
}
