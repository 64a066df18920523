package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"tripmate/internal/itinerary"
)

// TravelPlan is the structured itinerary extracted from a conversation's
// latest complete assistant reply. One plan per conversation.
type TravelPlan struct {
	BaseModel
	ConversationID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Destination    string
	DayLabels      pq.StringArray                                `gorm:"type:text[]"`
	Itinerary      datatypes.JSONType[[]itinerary.DayItinerary] `gorm:"type:jsonb"`
	TotalCost      *int
}

func (p *TravelPlan) Days() []itinerary.DayItinerary {
	return p.Itinerary.Data()
}

func (p *TravelPlan) SetDays(days []itinerary.DayItinerary) {
	p.Itinerary = datatypes.NewJSONType(days)

	labels := make(pq.StringArray, 0, len(days))
	total, hasCost := 0, false
	for _, d := range days {
		labels = append(labels, d.Day)
		if d.DailyCost != nil {
			total += *d.DailyCost
			hasCost = true
		}
	}
	p.DayLabels = labels
	p.TotalCost = nil
	if hasCost {
		p.TotalCost = &total
	}
}
