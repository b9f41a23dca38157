// AngelaMos | 2026
// service_test.go

package recipe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/recipebox/internal/catalog"
	"github.com/recipebox/recipebox/internal/core"
)

// pngBytes is a minimal valid PNG signature, enough for content sniffing.
var pngBytes = []byte("\x89PNG\r\n\x1a\n" + "payload")

// fakeRepository keeps recipes and their relation sets in memory and
// validates relation ids against a global item registry, mirroring the SQL
// layer's behavior.
type fakeRepository struct {
	recipes     map[string]*Recipe
	tags        map[string]catalog.Item
	ingredients map[string]catalog.Item
	tagSets     map[string][]string
	ingSets     map[string][]string
}

func newFakeRecipeRepository() *fakeRepository {
	return &fakeRepository{
		recipes:     make(map[string]*Recipe),
		tags:        make(map[string]catalog.Item),
		ingredients: make(map[string]catalog.Item),
		tagSets:     make(map[string][]string),
		ingSets:     make(map[string][]string),
	}
}

func (f *fakeRepository) registerTag(id, name string) {
	f.registerTagFor(id, name, "user-1")
}

func (f *fakeRepository) registerTagFor(id, name, userID string) {
	f.tags[id] = catalog.Item{ID: id, UserID: userID, Name: name}
}

func (f *fakeRepository) registerIngredient(id, name string) {
	f.registerIngredientFor(id, name, "user-1")
}

func (f *fakeRepository) registerIngredientFor(id, name, userID string) {
	f.ingredients[id] = catalog.Item{ID: id, UserID: userID, Name: name}
}

func (f *fakeRepository) checkIDs(registry map[string]catalog.Item, ids []string) error {
	for _, id := range ids {
		if _, ok := registry[id]; !ok {
			return fmt.Errorf("unknown id %s: %w", id, core.ErrInvalidInput)
		}
	}
	return nil
}

func (f *fakeRepository) Create(
	_ context.Context,
	rec *Recipe,
	tagIDs, ingredientIDs []string,
) error {
	if err := f.checkIDs(f.tags, tagIDs); err != nil {
		return err
	}
	if err := f.checkIDs(f.ingredients, ingredientIDs); err != nil {
		return err
	}

	clone := *rec
	f.recipes[rec.ID] = &clone
	f.tagSets[rec.ID] = append([]string{}, tagIDs...)
	f.ingSets[rec.ID] = append([]string{}, ingredientIDs...)
	return nil
}

func (f *fakeRepository) ListByOwner(
	_ context.Context,
	userID string,
) ([]Recipe, error) {
	result := []Recipe{}
	for id, rec := range f.recipes {
		if rec.UserID != userID {
			continue
		}
		clone := *rec
		clone.TagIDs = append([]string{}, f.tagSets[id]...)
		clone.IngredientIDs = append([]string{}, f.ingSets[id]...)
		result = append(result, clone)
	}
	return result, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Recipe, error) {
	rec, ok := f.recipes[id]
	if !ok {
		return nil, fmt.Errorf("get recipe: %w", core.ErrNotFound)
	}

	clone := *rec
	clone.TagIDs = append([]string{}, f.tagSets[id]...)
	clone.IngredientIDs = append([]string{}, f.ingSets[id]...)
	for _, tagID := range f.tagSets[id] {
		clone.Tags = append(clone.Tags, f.tags[tagID])
	}
	for _, ingID := range f.ingSets[id] {
		clone.Ingredients = append(clone.Ingredients, f.ingredients[ingID])
	}
	return &clone, nil
}

func (f *fakeRepository) Update(
	_ context.Context,
	rec *Recipe,
	rel RelationUpdate,
) error {
	stored, ok := f.recipes[rec.ID]
	if !ok {
		return fmt.Errorf("update recipe: %w", core.ErrNotFound)
	}

	stored.Title = rec.Title
	stored.TimeMinutes = rec.TimeMinutes
	stored.Price = rec.Price
	stored.Link = rec.Link

	if rel.Tags != nil {
		if err := f.checkIDs(f.tags, *rel.Tags); err != nil {
			return err
		}
		f.tagSets[rec.ID] = append([]string{}, *rel.Tags...)
	}
	if rel.Ingredients != nil {
		if err := f.checkIDs(f.ingredients, *rel.Ingredients); err != nil {
			return err
		}
		f.ingSets[rec.ID] = append([]string{}, *rel.Ingredients...)
	}
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.recipes[id]; !ok {
		return fmt.Errorf("delete recipe: %w", core.ErrNotFound)
	}
	delete(f.recipes, id)
	delete(f.tagSets, id)
	delete(f.ingSets, id)
	return nil
}

func (f *fakeRepository) SetImagePath(
	_ context.Context,
	id, relPath string,
) (*string, error) {
	rec, ok := f.recipes[id]
	if !ok {
		return nil, fmt.Errorf("set image path: %w", core.ErrNotFound)
	}

	previous := rec.ImagePath
	path := relPath
	rec.ImagePath = &path
	return previous, nil
}

// fakeStore records writes and removals without touching disk.
type fakeStore struct {
	saved   map[string][]byte
	removed []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string][]byte)}
}

func (f *fakeStore) Save(_ context.Context, relPath string, data []byte) error {
	f.saved[relPath] = data
	return nil
}

func (f *fakeStore) Remove(_ context.Context, relPath string) error {
	f.removed = append(f.removed, relPath)
	delete(f.saved, relPath)
	return nil
}

func newTestService() (*Service, *fakeRepository, *fakeStore) {
	repo := newFakeRecipeRepository()
	store := newFakeStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewService(repo, store, 1<<20, logger)
	return service, repo, store
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validCreateRequest() CreateRecipeRequest {
	return CreateRecipeRequest{
		Title:       "Pancakes",
		TimeMinutes: 15,
		Price:       price("4.50"),
	}
}

func TestCreateRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with exact relation sets", func(t *testing.T) {
		service, repo, _ := newTestService()
		repo.registerTag("tag-1", "Breakfast")
		repo.registerTag("tag-2", "Sweet")
		repo.registerIngredient("ing-1", "Flour")

		req := validCreateRequest()
		req.Tags = []string{"tag-1", "tag-2"}
		req.Ingredients = []string{"ing-1"}

		rec, err := service.Create(ctx, "user-1", req)

		require.NoError(t, err)
		assert.Equal(t, "user-1", rec.UserID)
		assert.ElementsMatch(t, []string{"tag-1", "tag-2"}, rec.TagIDs)
		assert.ElementsMatch(t, []string{"ing-1"}, rec.IngredientIDs)
		require.Len(t, rec.Tags, 2)
	})

	t.Run("relation ids resolve across owners", func(t *testing.T) {
		service, repo, _ := newTestService()
		repo.registerTagFor("tag-9", "Dinner", "user-2")
		repo.registerIngredientFor("ing-9", "Salt", "user-2")

		req := validCreateRequest()
		req.Tags = []string{"tag-9"}
		req.Ingredients = []string{"ing-9"}

		rec, err := service.Create(ctx, "user-1", req)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"tag-9"}, rec.TagIDs)
		assert.ElementsMatch(t, []string{"ing-9"}, rec.IngredientIDs)
	})

	t.Run("unknown relation id is invalid input", func(t *testing.T) {
		service, _, _ := newTestService()

		req := validCreateRequest()
		req.Tags = []string{"no-such-tag"}

		_, err := service.Create(ctx, "user-1", req)

		assert.ErrorIs(t, err, core.ErrInvalidInput)
	})

	t.Run("negative price is invalid", func(t *testing.T) {
		service, _, _ := newTestService()

		req := validCreateRequest()
		req.Price = price("-1.00")

		_, err := service.Create(ctx, "user-1", req)

		assert.ErrorIs(t, err, core.ErrInvalidInput)
	})

	t.Run("more than two decimal places is invalid", func(t *testing.T) {
		service, _, _ := newTestService()

		req := validCreateRequest()
		req.Price = price("4.505")

		_, err := service.Create(ctx, "user-1", req)

		assert.ErrorIs(t, err, core.ErrInvalidInput)
	})

	t.Run("blank title is invalid", func(t *testing.T) {
		service, _, _ := newTestService()

		req := validCreateRequest()
		req.Title = "   "

		_, err := service.Create(ctx, "user-1", req)

		assert.ErrorIs(t, err, core.ErrInvalidInput)
	})
}

func TestGetRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("owner sees own recipe", func(t *testing.T) {
		service, _, _ := newTestService()

		created, err := service.Create(ctx, "user-1", validCreateRequest())
		require.NoError(t, err)

		rec, err := service.Get(ctx, "user-1", created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, rec.ID)
	})

	t.Run("another user's recipe reads as not found", func(t *testing.T) {
		service, _, _ := newTestService()

		created, err := service.Create(ctx, "user-1", validCreateRequest())
		require.NoError(t, err)

		_, err = service.Get(ctx, "user-2", created.ID)

		assert.ErrorIs(t, err, core.ErrNotFound)
	})
}

func TestReplaceRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("omitted relation sets are cleared", func(t *testing.T) {
		service, repo, _ := newTestService()
		repo.registerTag("tag-1", "Breakfast")

		req := validCreateRequest()
		req.Tags = []string{"tag-1"}
		created, err := service.Create(ctx, "user-1", req)
		require.NoError(t, err)
		require.NotEmpty(t, created.TagIDs)

		full := validCreateRequest()
		full.Title = "Replaced"

		rec, err := service.Replace(ctx, "user-1", created.ID, full)

		require.NoError(t, err)
		assert.Equal(t, "Replaced", rec.Title)
		assert.Empty(t, rec.TagIDs)
	})
}

func TestPatchRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("absent fields are preserved", func(t *testing.T) {
		service, repo, _ := newTestService()
		repo.registerTag("tag-1", "Breakfast")

		req := validCreateRequest()
		req.Tags = []string{"tag-1"}
		created, err := service.Create(ctx, "user-1", req)
		require.NoError(t, err)

		title := "Patched"
		rec, err := service.ApplyPatch(ctx, "user-1", created.ID,
			PatchRecipeRequest{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, "Patched", rec.Title)
		assert.Equal(t, []string{"tag-1"}, rec.TagIDs)
		assert.Equal(t, 15, rec.TimeMinutes)
	})

	t.Run("explicit empty set clears relations", func(t *testing.T) {
		service, repo, _ := newTestService()
		repo.registerTag("tag-1", "Breakfast")

		req := validCreateRequest()
		req.Tags = []string{"tag-1"}
		created, err := service.Create(ctx, "user-1", req)
		require.NoError(t, err)

		empty := []string{}
		rec, err := service.ApplyPatch(ctx, "user-1", created.ID,
			PatchRecipeRequest{Tags: &empty})

		require.NoError(t, err)
		assert.Empty(t, rec.TagIDs)
	})

	t.Run("patching someone else's recipe is not found", func(t *testing.T) {
		service, _, _ := newTestService()

		created, err := service.Create(ctx, "user-1", validCreateRequest())
		require.NoError(t, err)

		title := "Hijack"
		_, err = service.ApplyPatch(ctx, "user-2", created.ID,
			PatchRecipeRequest{Title: &title})

		assert.ErrorIs(t, err, core.ErrNotFound)
	})
}

func TestDeleteRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("delete removes the recipe and its image", func(t *testing.T) {
		service, _, store := newTestService()
		service.generateName = func() string { return "X" }

		created, err := service.Create(ctx, "user-1", validCreateRequest())
		require.NoError(t, err)

		_, err = service.AttachImage(ctx, "user-1", created.ID, "photo.jpg",
			bytes.NewReader(pngBytes))
		require.NoError(t, err)

		require.NoError(t, service.Delete(ctx, "user-1", created.ID))

		_, err = service.Get(ctx, "user-1", created.ID)
		assert.ErrorIs(t, err, core.ErrNotFound)
		assert.Contains(t, store.removed, "uploads/recipe/X.jpg")
	})
}

func TestAttachImage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the sniffed image under a generated path", func(t *testing.T) {
		service, _, store := newTestService()
		service.generateName = func() string { return "X" }

		created, err := service.Create(ctx, "user-1", validCreateRequest())
		require.NoError(t, err)

		rec, err := service.AttachImage(ctx, "user-1", created.ID, "photo.jpg",
			bytes.NewReader(pngBytes))

		require.NoError(t, err)
		require.NotNil(t, rec.ImagePath)
		assert.Equal(t, "uploads/recipe/X.jpg", *rec.ImagePath)
		assert.Contains(t, store.saved, "uploads/recipe/X.jpg")
	})

	t.Run("replacing an image removes the previous file", func(t *testing.T) {
		service, _, store := newTestService()
		names := []string{"first", "second"}
		service.generateName = func() string {
			name := names[0]
			names = names[1:]
			return name
		}

		created, err := service.Create(ctx, "user-1", validCreateRequest())
		require.NoError(t, err)

		_, err = service.AttachImage(ctx, "user-1", created.ID, "a.png",
			bytes.NewReader(pngBytes))
		require.NoError(t, err)

		_, err = service.AttachImage(ctx, "user-1", created.ID, "b.png",
			bytes.NewReader(pngBytes))
		require.NoError(t, err)

		assert.Contains(t, store.removed, "uploads/recipe/first.png")
		assert.Contains(t, store.saved, "uploads/recipe/second.png")
	})

	t.Run("non-image content is rejected", func(t *testing.T) {
		service, _, store := newTestService()

		created, err := service.Create(ctx, "user-1", validCreateRequest())
		require.NoError(t, err)

		_, err = service.AttachImage(ctx, "user-1", created.ID, "notes.txt",
			strings.NewReader("just some text"))

		assert.ErrorIs(t, err, core.ErrInvalidInput)
		assert.Empty(t, store.saved)
	})

	t.Run("oversized upload is rejected", func(t *testing.T) {
		service, _, _ := newTestService()
		service.maxImageSize = 16

		created, err := service.Create(ctx, "user-1", validCreateRequest())
		require.NoError(t, err)

		big := append([]byte{}, pngBytes...)
		big = append(big, bytes.Repeat([]byte{0}, 64)...)

		_, err = service.AttachImage(ctx, "user-1", created.ID, "big.png",
			bytes.NewReader(big))

		assert.ErrorIs(t, err, core.ErrInvalidInput)
	})

	t.Run("uploading to another user's recipe is not found", func(t *testing.T) {
		service, _, _ := newTestService()

		created, err := service.Create(ctx, "user-1", validCreateRequest())
		require.NoError(t, err)

		_, err = service.AttachImage(ctx, "user-2", created.ID, "a.png",
			bytes.NewReader(pngBytes))

		assert.ErrorIs(t, err, core.ErrNotFound)
	})
}
