package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
)

// MessageRepository implements the message repository interface using GORM
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

// Create appends a message to a meeting transcript
func (r *MessageRepository) Create(ctx context.Context, message *entities.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// FindRecent retrieves the latest messages of a meeting, newest first
func (r *MessageRepository) FindRecent(ctx context.Context, meetingID uuid.UUID, limit int) ([]*entities.Message, error) {
	var messages []*entities.Message
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to find recent messages: %w", err)
	}
	return messages, nil
}

// FindByMeetingID retrieves the full transcript in chronological order
func (r *MessageRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.Message, error) {
	var messages []*entities.Message
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to find messages by meeting ID: %w", err)
	}
	return messages, nil
}
