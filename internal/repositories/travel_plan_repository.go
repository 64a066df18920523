package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripmate/internal/models/db_models"
)

type ITravelPlanRepository interface {
	Upsert(ctx context.Context, plan *db_models.TravelPlan) error
	GetByID(ctx context.Context, id string) (*db_models.TravelPlan, error)
	GetByConversationID(ctx context.Context, conversationID string) (*db_models.TravelPlan, error)
	ListAll(ctx context.Context) ([]db_models.TravelPlan, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type TravelPlanRepository struct {
	db *gorm.DB
}

func NewTravelPlanRepository(db *gorm.DB) ITravelPlanRepository {
	return &TravelPlanRepository{db: db}
}

// Upsert stores the plan of a conversation, replacing the previous one. On
// return plan holds the stored row, including the id of a replaced plan.
func (p TravelPlanRepository) Upsert(ctx context.Context, plan *db_models.TravelPlan) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "conversation_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"destination", "day_labels", "itinerary", "total_cost", "updated_at", "deleted_at"}),
		}).Create(plan).Error
		if err != nil {
			return err
		}
		var stored db_models.TravelPlan
		if err := tx.First(&stored, "conversation_id = ?", plan.ConversationID).Error; err != nil {
			return err
		}
		*plan = stored
		return nil
	})
}

func (p TravelPlanRepository) GetByID(ctx context.Context, id string) (*db_models.TravelPlan, error) {
	return p.first(ctx, "id = ?", id)
}

func (p TravelPlanRepository) GetByConversationID(ctx context.Context, conversationID string) (*db_models.TravelPlan, error) {
	return p.first(ctx, "conversation_id = ?", conversationID)
}

func (p TravelPlanRepository) first(ctx context.Context, query string, arg string) (*db_models.TravelPlan, error) {
	var plan db_models.TravelPlan
	err := p.db.WithContext(ctx).First(&plan, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (p TravelPlanRepository) ListAll(ctx context.Context) ([]db_models.TravelPlan, error) {
	var plans []db_models.TravelPlan
	err := p.db.WithContext(ctx).Order("created_at DESC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (p TravelPlanRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := p.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.TravelPlan{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
