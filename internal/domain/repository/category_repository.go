package repository

import "github.com/nagadco/tasnifoh/internal/domain/entity"

// CategoryRepository is the persistence port for the taxonomy (DIP).
// The collection is read and written as a whole: the backing store is
// a single JSON document, and mutations are serialized by the adapter.
type CategoryRepository interface {
	List() ([]entity.Category, error)
	Save(categories []entity.Category) error
}

// POIRepository is the read-only port for points of interest.
type POIRepository interface {
	List() ([]entity.POI, error)
}
