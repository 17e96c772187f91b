package usecase

import (
	"github.com/nagadco/tasnifoh/internal/domain/entity"
	"github.com/nagadco/tasnifoh/internal/domain/repository"
)

// POIUseCase serves the read-only POI dataset.
type POIUseCase struct {
	repo repository.POIRepository
}

// NewPOIUseCase builds the use case.
func NewPOIUseCase(repo repository.POIRepository) *POIUseCase {
	return &POIUseCase{repo: repo}
}

// List returns all points of interest.
func (uc *POIUseCase) List() ([]entity.POI, error) {
	return uc.repo.List()
}
