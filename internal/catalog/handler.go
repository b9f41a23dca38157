// AngelaMos | 2026
// handler.go

package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/recipebox/recipebox/internal/core"
	"github.com/recipebox/recipebox/internal/middleware"
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

// RegisterRoutes mounts tag and ingredient endpoints on a router already
// rooted at /recipe.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/tags", func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/", h.list(KindTag))
		r.Post("/", h.create(KindTag))
	})

	r.Route("/ingredients", func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/", h.list(KindIngredient))
		r.Post("/", h.create(KindIngredient))
	})
}

func (h *Handler) list(kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.GetUserID(r.Context())

		items, err := h.service.ListForOwner(r.Context(), userID, kind)
		if err != nil {
			if errors.Is(err, core.ErrUnauthorized) {
				core.Unauthorized(w, "")
				return
			}
			core.InternalServerError(w, err)
			return
		}

		core.OK(w, ToItemResponseList(items))
	}
}

func (h *Handler) create(kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.GetUserID(r.Context())

		var req CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			core.BadRequest(w, "invalid request body")
			return
		}

		if err := h.validator.Struct(req); err != nil {
			core.BadRequest(w, core.FormatValidationError(err))
			return
		}

		item, err := h.service.CreateForOwner(r.Context(), userID, kind, req.Name)
		if err != nil {
			if errors.Is(err, core.ErrInvalidInput) {
				core.BadRequest(w, "name must not be empty")
				return
			}
			if errors.Is(err, core.ErrUnauthorized) {
				core.Unauthorized(w, "")
				return
			}
			core.InternalServerError(w, err)
			return
		}

		core.Created(w, ToItemResponse(item))
	}
}
