package request_models

type MapLocationInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type GenerateMapRequest struct {
	Locations []MapLocationInput `json:"locations" binding:"required"`
	City      string             `json:"city"`
}
