package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActionItemStatus represents the completion state of an action item
type ActionItemStatus string

const (
	ActionItemStatusPending   ActionItemStatus = "pending"
	ActionItemStatusCompleted ActionItemStatus = "completed"
)

// ActionItem is a follow-up task extracted from a meeting when it ends.
// Extraction is best effort: a meeting may close with zero items.
type ActionItem struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Description string           `gorm:"type:text;not null" json:"description"`
	AssignedTo  *string          `gorm:"type:varchar(255)" json:"assigned_to,omitempty"`
	Status      ActionItemStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	CreatedAt   time.Time        `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// Complete marks the item done and records the completion time
func (a *ActionItem) Complete() {
	now := time.Now()
	a.Status = ActionItemStatusCompleted
	a.CompletedAt = &now
}
