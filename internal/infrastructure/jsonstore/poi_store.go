package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nagadco/tasnifoh/internal/domain"
	"github.com/nagadco/tasnifoh/internal/domain/entity"
)

const filePOIs = "pois.json"

// POIStore is the read-only file adapter for repository.POIRepository.
type POIStore struct {
	dataDir string
}

// NewPOIStore builds the store over the given data directory.
func NewPOIStore(dataDir string) *POIStore {
	return &POIStore{dataDir: dataDir}
}

// List reads pois.json. Missing or malformed data surfaces as
// ErrStorageUnavailable.
func (s *POIStore) List() ([]entity.POI, error) {
	path := filepath.Join(s.dataDir, filePOIs)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorageUnavailable, path, err)
	}
	var pois []entity.POI
	if err := json.Unmarshal(raw, &pois); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrStorageUnavailable, path, err)
	}
	return pois, nil
}
