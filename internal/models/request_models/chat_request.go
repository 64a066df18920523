package request_models

type SendMessageRequest struct {
	ConversationID string `json:"conversationId"`
	Content        string `json:"content" binding:"required"`
	// IANA zone of the client, used for the "current time" line of the prompt
	Timezone string `json:"timezone"`
}
