// AngelaMos | 2026
// handler.go

package recipe

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

// RegisterRoutes mounts recipe endpoints on a router already rooted at
// /recipe.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/recipes", func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/", h.list)
		r.Post("/", h.create)

		r.Route("/{recipeID}", func(r chi.Router) {
			r.Get("/", h.detail)
			r.Put("/", h.replace)
			r.Patch("/", h.patch)
			r.Delete("/", h.delete)
			r.Post("/upload-image", h.uploadImage)
		})
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	recipes, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	responses := make([]any, 0, len(recipes))
	for i := range recipes {
		responses = append(responses, RepresentationFor(RepresentationList, &recipes[i]))
	}

	core.OK(w, responses)
}

func (h *Handler) detail(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	recipeID := chi.URLParam(r, "recipeID")

	rec, err := h.service.Get(r.Context(), userID, recipeID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	core.OK(w, RepresentationFor(RepresentationDetail, rec))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	rec, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	core.Created(w, RepresentationFor(RepresentationDetail, rec))
}

func (h *Handler) replace(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	recipeID := chi.URLParam(r, "recipeID")

	var req CreateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	rec, err := h.service.Replace(r.Context(), userID, recipeID, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	core.OK(w, RepresentationFor(RepresentationDetail, rec))
}

func (h *Handler) patch(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	recipeID := chi.URLParam(r, "recipeID")

	var req PatchRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	rec, err := h.service.ApplyPatch(r.Context(), userID, recipeID, req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	core.OK(w, RepresentationFor(RepresentationDetail, rec))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	recipeID := chi.URLParam(r, "recipeID")

	if err := h.service.Delete(r.Context(), userID, recipeID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	recipeID := chi.URLParam(r, "recipeID")

	file, header, err := r.FormFile("image")
	if err != nil {
		core.BadRequest(w, "image file is required")
		return
	}
	defer file.Close()

	rec, err := h.service.AttachImage(r.Context(), userID, recipeID, header.Filename, file)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	core.OK(w, RepresentationFor(RepresentationImageUpload, rec))
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "recipe")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, err.Error())
	case errors.Is(err, core.ErrUnauthorized):
		core.Unauthorized(w, "")
	default:
		core.InternalServerError(w, err)
	}
}
