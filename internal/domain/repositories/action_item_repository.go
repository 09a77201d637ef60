package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/virtual-office/internal/domain/entities"
)

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	// CreateBatch inserts the items extracted from a closed meeting
	CreateBatch(ctx context.Context, items []*entities.ActionItem) error

	// FindByMeetingID retrieves all action items of a meeting
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error)

	// UpdateStatus transitions an action item between pending and completed
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ActionItemStatus) error
}
