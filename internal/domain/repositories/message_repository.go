package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/virtual-office/internal/domain/entities"
)

// MessageRepository defines the interface for meeting transcript data access
type MessageRepository interface {
	// Create appends a message to a meeting transcript
	Create(ctx context.Context, message *entities.Message) error

	// FindRecent retrieves the latest messages of a meeting, newest first
	FindRecent(ctx context.Context, meetingID uuid.UUID, limit int) ([]*entities.Message, error)

	// FindByMeetingID retrieves the full transcript in chronological order
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.Message, error)
}
