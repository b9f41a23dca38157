// AngelaMos | 2026
// handler_test.go

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *chi.Mux {
	service, _, _ := newTestService()
	handler := NewHandler(service)

	router := chi.NewRouter()
	router.Route("/user", func(r chi.Router) {
		handler.RegisterRoutes(r)
	})
	return router
}

func TestCreateTokenEndpoint(t *testing.T) {
	t.Run("valid credentials return a token", func(t *testing.T) {
		router := newTestRouter()

		body := `{"email":"test@example.com","password":"testpass123"}`
		req := httptest.NewRequest(
			http.MethodPost, "/user/token", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data TokenResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Data.Token)
	})

	t.Run("bad credentials return 400 without a token", func(t *testing.T) {
		router := newTestRouter()

		body := `{"email":"test@example.com","password":"wrongpass"}`
		req := httptest.NewRequest(
			http.MethodPost, "/user/token", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotContains(t, rec.Body.String(), `"token"`)
	})

	t.Run("unknown email gets the same response as bad password", func(t *testing.T) {
		router := newTestRouter()

		body := `{"email":"nobody@example.com","password":"testpass123"}`
		req := httptest.NewRequest(
			http.MethodPost, "/user/token", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unable to authenticate")
	})

	t.Run("missing fields return validation error", func(t *testing.T) {
		router := newTestRouter()

		req := httptest.NewRequest(
			http.MethodPost, "/user/token", strings.NewReader(`{"email":"test@example.com"}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
