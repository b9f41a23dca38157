// AngelaMos | 2026
// service.go

package recipe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/recipebox/recipebox/internal/core"
)

// Image uploads are sniffed, not trusted by extension. Only raster formats a
// browser can render inline are accepted.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Service struct {
	repo         Repository
	store        ImageStore
	generateName NameGenerator
	maxImageSize int64
	log          *slog.Logger
}

func NewService(
	repo Repository,
	store ImageStore,
	maxImageSize int64,
	log *slog.Logger,
) *Service {
	return &Service{
		repo:         repo,
		store:        store,
		generateName: RandomImageName,
		maxImageSize: maxImageSize,
		log:          log,
	}
}

func (s *Service) List(ctx context.Context, userID string) ([]Recipe, error) {
	if userID == "" {
		return nil, core.ErrUnauthorized
	}

	return s.repo.ListByOwner(ctx, userID)
}

// Get returns a recipe only to its owner. Someone else's recipe id resolves
// the same as a missing one.
func (s *Service) Get(ctx context.Context, userID, recipeID string) (*Recipe, error) {
	rec, err := s.repo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if rec.UserID != userID {
		return nil, fmt.Errorf("get recipe: %w", core.ErrNotFound)
	}

	return rec, nil
}

func (s *Service) Create(
	ctx context.Context,
	userID string,
	req CreateRecipeRequest,
) (*Recipe, error) {
	price, err := validatePrice(req.Price)
	if err != nil {
		return nil, err
	}

	rec := &Recipe{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		TimeMinutes: req.TimeMinutes,
		Price:       price,
		Link:        req.Link,
	}

	if rec.Title == "" {
		return nil, fmt.Errorf("title must not be empty: %w", core.ErrInvalidInput)
	}

	if err := s.repo.Create(ctx, rec, req.Tags, req.Ingredients); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, rec.ID)
}

// Replace applies a full update: every scalar field takes the request value
// and both relation sets are replaced, so omitted tags or ingredients clear.
func (s *Service) Replace(
	ctx context.Context,
	userID, recipeID string,
	req CreateRecipeRequest,
) (*Recipe, error) {
	rec, err := s.Get(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}

	price, err := validatePrice(req.Price)
	if err != nil {
		return nil, err
	}

	rec.Title = strings.TrimSpace(req.Title)
	rec.TimeMinutes = req.TimeMinutes
	rec.Price = price
	rec.Link = req.Link

	if rec.Title == "" {
		return nil, fmt.Errorf("title must not be empty: %w", core.ErrInvalidInput)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	ingredients := req.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	rel := RelationUpdate{Tags: &tags, Ingredients: &ingredients}
	if err := s.repo.Update(ctx, rec, rel); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, rec.ID)
}

// ApplyPatch updates only the fields present in the request. Absent relation
// fields are left untouched, unlike Replace.
func (s *Service) ApplyPatch(
	ctx context.Context,
	userID, recipeID string,
	req PatchRecipeRequest,
) (*Recipe, error) {
	rec, err := s.Get(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("title must not be empty: %w", core.ErrInvalidInput)
		}
		rec.Title = title
	}
	if req.TimeMinutes != nil {
		rec.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		price, err := validatePrice(req.Price)
		if err != nil {
			return nil, err
		}
		rec.Price = price
	}
	if req.Link != nil {
		rec.Link = *req.Link
	}

	rel := RelationUpdate{Tags: req.Tags, Ingredients: req.Ingredients}
	if err := s.repo.Update(ctx, rec, rel); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, rec.ID)
}

func (s *Service) Delete(ctx context.Context, userID, recipeID string) error {
	rec, err := s.Get(ctx, userID, recipeID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, rec.ID); err != nil {
		return err
	}

	if rec.ImagePath != nil {
		if err := s.store.Remove(ctx, *rec.ImagePath); err != nil {
			s.log.Warn("failed to remove image for deleted recipe",
				"recipe_id", rec.ID,
				"error", err,
			)
		}
	}

	return nil
}

// AttachImage sniffs, stores and records an uploaded image for a recipe the
// caller owns, replacing any previous upload.
func (s *Service) AttachImage(
	ctx context.Context,
	userID, recipeID, fileName string,
	body io.Reader,
) (*Recipe, error) {
	rec, err := s.Get(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(body, s.maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image upload: %w", err)
	}

	if int64(len(data)) > s.maxImageSize {
		return nil, fmt.Errorf(
			"image exceeds %d bytes: %w", s.maxImageSize, core.ErrInvalidInput)
	}

	detected := mimetype.Detect(data)
	if !allowedImageTypes[detected.String()] {
		return nil, fmt.Errorf(
			"unsupported image type %q: %w", detected.String(), core.ErrInvalidInput)
	}

	if filepath.Ext(fileName) == "" {
		fileName += detected.Extension()
	}

	relPath := ImagePath(s.generateName, fileName)
	if err := s.store.Save(ctx, relPath, data); err != nil {
		return nil, err
	}

	previous, err := s.repo.SetImagePath(ctx, rec.ID, relPath)
	if err != nil {
		return nil, err
	}

	if previous != nil && *previous != relPath {
		if err := s.store.Remove(ctx, *previous); err != nil {
			s.log.Warn("failed to remove replaced image",
				"recipe_id", rec.ID,
				"error", err,
			)
		}
	}

	rec.ImagePath = &relPath
	return rec, nil
}

// validatePrice rejects negative amounts and anything finer than cents.
func validatePrice(price *decimal.Decimal) (decimal.Decimal, error) {
	if price == nil {
		return decimal.Decimal{}, fmt.Errorf("price is required: %w", core.ErrInvalidInput)
	}

	if price.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("price must not be negative: %w", core.ErrInvalidInput)
	}

	if price.Exponent() < -2 {
		return decimal.Decimal{}, fmt.Errorf("price allows at most two decimal places: %w", core.ErrInvalidInput)
	}

	return *price, nil
}
