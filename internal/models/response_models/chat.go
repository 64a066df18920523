package response_models

import "tripmate/internal/itinerary"

type MessageResponse struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

type ChatReply struct {
	ConversationID string                   `json:"conversationId"`
	Message        MessageResponse          `json:"message"`
	Itinerary      []itinerary.DayItinerary `json:"itinerary,omitempty"`
	TravelPlanID   string                   `json:"travelPlanId,omitempty"`
}

type ConversationSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

type ConversationDetail struct {
	ConversationSummary
	Messages   []MessageResponse   `json:"messages"`
	TravelPlan *TravelPlanResponse `json:"travelPlan,omitempty"`
}
