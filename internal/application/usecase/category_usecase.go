package usecase

import (
	"strings"

	"github.com/nagadco/tasnifoh/internal/application/dto"
	"github.com/nagadco/tasnifoh/internal/domain"
	"github.com/nagadco/tasnifoh/internal/domain/entity"
	"github.com/nagadco/tasnifoh/internal/domain/matching"
	"github.com/nagadco/tasnifoh/internal/domain/repository"
)

// CategoryUseCase implements taxonomy maintenance: list/browse, CRUD
// and keyword growth. Mutations load the whole collection, validate,
// and save it back; the store serializes writers.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase builds the use case.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List returns the collection, narrowed by the unscored browse filter
// when search is non-empty.
func (uc *CategoryUseCase) List(search string) ([]entity.Category, error) {
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return matching.FilterCategories(search, categories), nil
}

// GetByID returns one category or ErrNotFound.
func (uc *CategoryUseCase) GetByID(id int) (*entity.Category, error) {
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create adds a taxonomy node. The id is max(id)+1. The Arabic name is
// mandatory and must be unique under matcher normalization
// (case/diacritic-insensitive). A parent_id, when set, must resolve.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*entity.Category, error) {
	nameAr := strings.TrimSpace(in.NameAr)
	if nameAr == "" {
		return nil, domain.ErrValidation
	}
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	normalized := matching.Normalize(nameAr)
	nextID := 0
	for _, c := range categories {
		if c.ID > nextID {
			nextID = c.ID
		}
		if matching.Normalize(c.NameAr) == normalized {
			return nil, domain.ErrDuplicateName
		}
	}
	nextID++

	if in.ParentID != nil && !hasCategory(categories, *in.ParentID) {
		return nil, domain.ErrValidation
	}

	category := entity.Category{
		ID:               nextID,
		NameAr:           nameAr,
		NameEn:           strings.TrimSpace(in.NameEn),
		Code:             in.Code,
		SearchKeyWordsAr: emptyIfNil(in.SearchKeyWordsAr),
		SearchKeyWordsEn: emptyIfNil(in.SearchKeyWordsEn),
		ParentID:         in.ParentID,
		DescriptionAr:    in.DescriptionAr,
		DescriptionEn:    in.DescriptionEn,
	}
	categories = append(categories, category)
	if err := uc.repo.Save(categories); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update applies a partial update. Renames are checked for duplicates
// against every other category; keyword arrays are replaced only when
// the request carries them.
func (uc *CategoryUseCase) Update(id int, in dto.UpdateCategoryRequest) (*entity.Category, error) {
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	idx := indexOf(categories, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	if in.NameAr != nil {
		nameAr := strings.TrimSpace(*in.NameAr)
		if nameAr == "" {
			return nil, domain.ErrValidation
		}
		normalized := matching.Normalize(nameAr)
		for _, c := range categories {
			if c.ID != id && matching.Normalize(c.NameAr) == normalized {
				return nil, domain.ErrDuplicateName
			}
		}
		categories[idx].NameAr = nameAr
	}
	if in.NameEn != nil {
		categories[idx].NameEn = strings.TrimSpace(*in.NameEn)
	}
	if in.Code != nil {
		categories[idx].Code = *in.Code
	}
	if in.SearchKeyWordsAr != nil {
		categories[idx].SearchKeyWordsAr = in.SearchKeyWordsAr
	}
	if in.SearchKeyWordsEn != nil {
		categories[idx].SearchKeyWordsEn = in.SearchKeyWordsEn
	}
	if in.ParentID != nil {
		if !hasCategory(categories, *in.ParentID) {
			return nil, domain.ErrValidation
		}
		categories[idx].ParentID = in.ParentID
	}
	if in.DescriptionAr != nil {
		categories[idx].DescriptionAr = in.DescriptionAr
	}
	if in.DescriptionEn != nil {
		categories[idx].DescriptionEn = in.DescriptionEn
	}
	if in.DisallowPartial != nil {
		categories[idx].DisallowPartial = *in.DisallowPartial
	}

	if err := uc.repo.Save(categories); err != nil {
		return nil, err
	}
	return &categories[idx], nil
}

// Delete removes a category. A category still referenced as some
// other category's parent_id cannot be deleted.
func (uc *CategoryUseCase) Delete(id int) (*entity.Category, error) {
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	idx := indexOf(categories, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	for _, c := range categories {
		if c.ParentID != nil && *c.ParentID == id {
			return nil, domain.ErrHasChildren
		}
	}
	removed := categories[idx]
	categories = append(categories[:idx], categories[idx+1:]...)
	if err := uc.repo.Save(categories); err != nil {
		return nil, err
	}
	return &removed, nil
}

// AddKeyword appends trimmed keywords to a category, skipping exact
// duplicates. At least one of the two languages must be provided.
func (uc *CategoryUseCase) AddKeyword(id int, in dto.AddKeywordRequest) (*entity.Category, error) {
	keywordAr := strings.TrimSpace(in.KeywordAr)
	keywordEn := strings.TrimSpace(in.KeywordEn)
	if keywordAr == "" && keywordEn == "" {
		return nil, domain.ErrValidation
	}
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	idx := indexOf(categories, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	if keywordAr != "" && !containsString(categories[idx].SearchKeyWordsAr, keywordAr) {
		categories[idx].SearchKeyWordsAr = append(categories[idx].SearchKeyWordsAr, keywordAr)
	}
	if keywordEn != "" && !containsString(categories[idx].SearchKeyWordsEn, keywordEn) {
		categories[idx].SearchKeyWordsEn = append(categories[idx].SearchKeyWordsEn, keywordEn)
	}
	if err := uc.repo.Save(categories); err != nil {
		return nil, err
	}
	return &categories[idx], nil
}

func indexOf(categories []entity.Category, id int) int {
	for i := range categories {
		if categories[i].ID == id {
			return i
		}
	}
	return -1
}

func hasCategory(categories []entity.Category, id int) bool {
	return indexOf(categories, id) >= 0
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
