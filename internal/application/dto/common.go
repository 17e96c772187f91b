package dto

import "github.com/nagadco/tasnifoh/internal/domain/entity"

// ErrorResponse is the HTTP error body. Code is a stable machine tag;
// Message is the user-visible Arabic text.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CategoryListResponse lists taxonomy nodes. The entity's JSON tags
// are the external data contract, so categories go over the wire as-is.
type CategoryListResponse struct {
	Items []entity.Category `json:"items"`
	Total int               `json:"total"`
}

// SuggestResponse carries ranked suggestions for a store-name query.
type SuggestResponse struct {
	Query   string                 `json:"query"`
	Matches []entity.CategoryMatch `json:"matches"`
}

// POIListResponse lists points of interest.
type POIListResponse struct {
	Items []entity.POI `json:"items"`
	Total int          `json:"total"`
}
