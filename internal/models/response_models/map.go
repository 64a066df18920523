package response_models

import "tripmate/internal/itinerary"

type GeocodeResult struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formattedAddress"`
	Adcode           string  `json:"adcode,omitempty"`
}

type MapData struct {
	Locations   []itinerary.Location `json:"locations"`
	MapImageURL string               `json:"mapImageUrl"`
}
