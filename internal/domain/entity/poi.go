package entity

// POI is a point of interest imported from the municipal CSV dumps.
// Served read-only; categorization of POIs happens offline.
type POI struct {
	ID         int     `json:"id"`
	NameAr     string  `json:"name_ar"`
	NameEn     string  `json:"name_en"`
	CategoryID *int    `json:"category_id"`
	City       string  `json:"city,omitempty"`
	Lat        float64 `json:"lat,omitempty"`
	Lng        float64 `json:"lng,omitempty"`
}
