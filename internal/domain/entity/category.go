package entity

// Category is one node of the taxonomy as stored in categories.json.
// The JSON field names are the external data contract and must not
// change: the same file is consumed by the web frontend and by the
// keyword maintenance scripts.
//
// Keyword lists may be missing in older records; nil is treated as an
// empty list everywhere, never as an error.
type Category struct {
	ID               int      `json:"id"`
	NameAr           string   `json:"name_ar"`
	NameEn           string   `json:"name_en"`
	Code             string   `json:"code"`
	SearchKeyWordsAr []string `json:"search_key_words_ar"`
	SearchKeyWordsEn []string `json:"search_key_words_en"`
	ParentID         *int     `json:"parent_id"`
	DescriptionAr    *string  `json:"description_ar"`
	DescriptionEn    *string  `json:"description_en"`

	// Optional matching controls (absent in most records).
	NegativeKeyWordsAr []string `json:"negative_key_words_ar,omitempty"`
	NegativeKeyWordsEn []string `json:"negative_key_words_en,omitempty"`
	DisallowPartial    bool     `json:"disallow_partial,omitempty"`
	Domain             *string  `json:"domain,omitempty"`
}

// CategoryMatch is one ranked suggestion for a store-name query.
// Confidence is a ranking score in (0, 1], not a probability.
// MatchedKeywords holds up to 3 strings (name or keywords) that
// contributed evidence, in the order they were found.
type CategoryMatch struct {
	Category        Category  `json:"category"`
	ParentCategory  *Category `json:"parentCategory"`
	Confidence      float64   `json:"confidence"`
	MatchedKeywords []string  `json:"matchedKeywords"`
}
