package request_models

type ParseItineraryRequest struct {
	Content string `json:"content" binding:"required"`
	// Strict rejects text that does not yet contain a complete table.
	Strict  bool   `json:"strict"`
	Geocode bool   `json:"geocode"`
	City    string `json:"city"`
}
