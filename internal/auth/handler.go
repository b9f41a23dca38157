// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/recipebox/recipebox/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the token endpoint on a router already rooted at
// /user.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/token", h.CreateToken)
}

func (h *Handler) CreateToken(w http.ResponseWriter, r *http.Request) {
	var req CreateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	key, err := h.service.IssueToken(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			// 400 rather than 401 on purpose: the response must not reveal
			// whether the email or the password was wrong.
			core.BadRequest(w, "unable to authenticate with provided credentials")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, TokenResponse{Token: key})
}
