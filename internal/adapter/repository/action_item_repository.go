package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
)

// ActionItemRepository implements the action item repository interface using GORM
type ActionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) *ActionItemRepository {
	return &ActionItemRepository{
		db: db,
	}
}

// CreateBatch inserts a batch of action items in one transaction
func (r *ActionItemRepository) CreateBatch(ctx context.Context, items []*entities.ActionItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(items).Error; err != nil {
		return fmt.Errorf("failed to create action items: %w", err)
	}
	return nil
}

// FindByMeetingID retrieves all action items of a meeting, oldest first
func (r *ActionItemRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find action items: %w", err)
	}
	return items, nil
}

// UpdateStatus transitions an action item between pending and completed
func (r *ActionItemRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ActionItemStatus) error {
	updates := map[string]interface{}{
		"status":       status,
		"completed_at": gorm.Expr("NULL"),
	}
	if status == entities.ActionItemStatusCompleted {
		updates["completed_at"] = gorm.Expr("now()")
	}

	result := r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update action item status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
