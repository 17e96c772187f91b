package dto

// CreateCategoryRequest carries a new taxonomy node. NameAr is
// mandatory; keyword lists default to empty.
type CreateCategoryRequest struct {
	NameAr           string   `json:"name_ar"`
	NameEn           string   `json:"name_en"`
	Code             string   `json:"code"`
	SearchKeyWordsAr []string `json:"search_key_words_ar"`
	SearchKeyWordsEn []string `json:"search_key_words_en"`
	ParentID         *int     `json:"parent_id"`
	DescriptionAr    *string  `json:"description_ar"`
	DescriptionEn    *string  `json:"description_en"`
}

// UpdateCategoryRequest is a partial update: nil fields keep the
// stored value; keyword arrays are replaced only when provided.
type UpdateCategoryRequest struct {
	NameAr           *string  `json:"name_ar"`
	NameEn           *string  `json:"name_en"`
	Code             *string  `json:"code"`
	SearchKeyWordsAr []string `json:"search_key_words_ar"`
	SearchKeyWordsEn []string `json:"search_key_words_en"`
	ParentID         *int     `json:"parent_id"`
	DescriptionAr    *string  `json:"description_ar"`
	DescriptionEn    *string  `json:"description_en"`
	DisallowPartial  *bool    `json:"disallow_partial"`
}

// AddKeywordRequest appends keywords to an existing category. At
// least one of the two must be present.
type AddKeywordRequest struct {
	KeywordAr string `json:"keyword_ar"`
	KeywordEn string `json:"keyword_en"`
}
