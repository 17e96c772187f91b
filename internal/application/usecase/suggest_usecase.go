package usecase

import (
	"github.com/nagadco/tasnifoh/internal/domain/entity"
	"github.com/nagadco/tasnifoh/internal/domain/matching"
	"github.com/nagadco/tasnifoh/internal/domain/repository"
)

// SuggestUseCase runs the matching core over the stored taxonomy.
// Matching itself is pure; this layer only supplies the collection.
type SuggestUseCase struct {
	repo repository.CategoryRepository
}

// NewSuggestUseCase builds the use case.
func NewSuggestUseCase(repo repository.CategoryRepository) *SuggestUseCase {
	return &SuggestUseCase{repo: repo}
}

// Suggest ranks categories for a free-text store name. limit <= 0
// falls back to matching.DefaultMaxResults.
func (uc *SuggestUseCase) Suggest(query string, limit int) ([]entity.CategoryMatch, error) {
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return matching.MatchCategories(query, categories, limit), nil
}

// Best returns the single top suggestion, or nil when nothing
// qualifies (not an error).
func (uc *SuggestUseCase) Best(query string) (*entity.CategoryMatch, error) {
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return matching.FindBestCategory(query, categories), nil
}
