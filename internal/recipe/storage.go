// AngelaMos | 2026
// storage.go

package recipe

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// NameGenerator produces the random identifier part of an uploaded image's
// file name. Injectable so tests can pin the generated path.
type NameGenerator func() string

func RandomImageName() string {
	return uuid.New().String()
}

// ImagePath builds the storage-relative path for an uploaded recipe image:
// uploads/recipe/<generated><original extension>.
func ImagePath(generate NameGenerator, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return path.Join("uploads", "recipe", generate()+ext)
}

type ImageStore interface {
	Save(ctx context.Context, relPath string, data []byte) error
	Remove(ctx context.Context, relPath string) error
}

// DiskStore writes uploads beneath a single media root directory.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

func (s *DiskStore) Save(ctx context.Context, relPath string, data []byte) error {
	fullPath := filepath.Join(s.root, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("create upload directory: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}

	return nil
}

func (s *DiskStore) Remove(ctx context.Context, relPath string) error {
	fullPath := filepath.Join(s.root, filepath.FromSlash(relPath))

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}

	return nil
}
