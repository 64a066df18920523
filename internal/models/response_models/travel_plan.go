package response_models

import "tripmate/internal/itinerary"

type TravelPlanResponse struct {
	ID             string                   `json:"id"`
	ConversationID string                   `json:"conversationId"`
	Destination    string                   `json:"destination"`
	DayLabels      []string                 `json:"dayLabels"`
	Itinerary      []itinerary.DayItinerary `json:"itinerary"`
	TotalCost      *int                     `json:"totalCost,omitempty"`
	CreatedAt      int64                    `json:"createdAt"`
}
