package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
)

type ConversationRepository interface {
	Create(ctx context.Context, conv *db_models.Conversation) error
	GetByID(ctx context.Context, id string) (*db_models.Conversation, error)
	GetWithMessages(ctx context.Context, id string) (*db_models.Conversation, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.Conversation, error)
	Touch(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) (bool, error)

	AddMessage(ctx context.Context, msg *db_models.Message) error
	ListMessages(ctx context.Context, conversationID string) ([]db_models.Message, error)
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(ctx context.Context, conv *db_models.Conversation) error {
	return r.db.WithContext(ctx).Create(conv).Error
}

func (r *conversationRepository) GetByID(ctx context.Context, id string) (*db_models.Conversation, error) {
	var conv db_models.Conversation
	err := r.db.WithContext(ctx).First(&conv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepository) GetWithMessages(ctx context.Context, id string) (*db_models.Conversation, error) {
	var conv db_models.Conversation
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("sent_at ASC")
		}).
		Preload("TravelPlan").
		First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Conversation, error) {
	var convs []db_models.Conversation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&convs).Error
	if err != nil {
		return nil, err
	}
	return convs, nil
}

func (r *conversationRepository) Touch(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Conversation{}).
		Where("id = ?", id).
		UpdateColumn("updated_at", time.Now().Unix()).Error
}

// Delete removes the conversation together with its messages and travel
// plan. It reports false when no conversation had that id.
func (r *conversationRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", id).Delete(&db_models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("conversation_id = ?", id).Delete(&db_models.TravelPlan{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&db_models.Conversation{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *conversationRepository) AddMessage(ctx context.Context, msg *db_models.Message) error {
	if msg.SentAt == 0 {
		msg.SentAt = time.Now().UnixNano()
	}
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *conversationRepository) ListMessages(ctx context.Context, conversationID string) ([]db_models.Message, error) {
	var msgs []db_models.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("sent_at ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
