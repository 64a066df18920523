package db_models

import "github.com/google/uuid"

type Conversation struct {
	BaseModel
	// nil for guest conversations
	UserID *string `gorm:"index"`
	Title  string

	Messages   []Message   `gorm:"constraint:OnDelete:CASCADE"`
	TravelPlan *TravelPlan `gorm:"constraint:OnDelete:CASCADE"`
}

// OwnedBy reports whether userID may see the conversation. Guest
// conversations are visible to everyone holding their id.
func (c *Conversation) OwnedBy(userID *string) bool {
	if c.UserID == nil {
		return true
	}
	return userID != nil && *userID == *c.UserID
}

type Message struct {
	BaseModel
	ConversationID uuid.UUID `gorm:"type:uuid;index"`
	Role           string    `gorm:"size:16"`
	Content        string    `gorm:"type:text"`
	// unix nanoseconds; orders messages created within the same second
	SentAt int64 `gorm:"index"`
}
