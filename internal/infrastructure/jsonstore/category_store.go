// Package jsonstore persists the taxonomy as JSON documents in a data
// directory, behind the domain repository ports. The files are shared
// with the frontend build and the offline keyword scripts, so the
// on-disk format (pretty-printed, 2-space indent) is part of the
// contract.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/nagadco/tasnifoh/internal/domain"
	"github.com/nagadco/tasnifoh/internal/domain/entity"
)

// Read preference: the bundled file (keyword bundles expanded) wins
// over the merged file, which wins over the base file. Writes always
// go to the base file.
const (
	fileBase    = "categories.json"
	fileMerged  = "categories_merged.json"
	fileBundled = "categories_bundled.json"
)

// CategoryStore is the file adapter for repository.CategoryRepository.
// A single mutex serializes writers; reads of the in-flight file are
// safe because writes are atomic (temp file + rename).
type CategoryStore struct {
	dataDir string
	mu      sync.Mutex
}

// NewCategoryStore builds the store over the given data directory.
func NewCategoryStore(dataDir string) *CategoryStore {
	return &CategoryStore{dataDir: dataDir}
}

// List reads the full category collection, preferring
// categories_bundled.json → categories_merged.json → categories.json.
// Missing files and malformed JSON surface as ErrStorageUnavailable.
func (s *CategoryStore) List() ([]entity.Category, error) {
	candidates := []string{
		filepath.Join(s.dataDir, fileBundled),
		filepath.Join(s.dataDir, fileMerged),
		filepath.Join(s.dataDir, fileBase),
	}
	for _, path := range candidates {
		raw, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorageUnavailable, path, err)
		}
		var categories []entity.Category
		if err := json.Unmarshal(raw, &categories); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrStorageUnavailable, path, err)
		}
		return categories, nil
	}
	return nil, fmt.Errorf("%w: no categories file in %s", domain.ErrStorageUnavailable, s.dataDir)
}

// Save replaces the whole collection on disk. The write is atomic:
// marshal to a temp file in the same directory, then rename over
// categories.json.
func (s *CategoryStore) Save(categories []entity.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pretty, err := json.MarshalIndent(categories, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}

	tmp, err := os.CreateTemp(s.dataDir, fileBase+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(pretty); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dataDir, fileBase)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
