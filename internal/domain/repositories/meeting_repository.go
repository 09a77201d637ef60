package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/virtual-office/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting together with its participants
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// FindByIDWithParticipants retrieves a meeting with participants and their staff preloaded
	FindByIDWithParticipants(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// List retrieves meetings with filters and pagination
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, int64, error)

	// Update updates an existing meeting
	Update(ctx context.Context, meeting *entities.Meeting) error

	// Delete removes a meeting and, via cascade, its messages, images and participants
	Delete(ctx context.Context, id uuid.UUID) error
}

// MeetingFilters represents filter options for listing meetings
type MeetingFilters struct {
	CompanyID uuid.UUID
	Status    *entities.MeetingStatus
	Limit     int
	Offset    int
}

// ParticipantRepository defines the interface for meeting participant data access
type ParticipantRepository interface {
	// FindByMeetingID retrieves participants of a meeting in join order, staff preloaded
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.Participant, error)

	// FindByMeetingAndStaff retrieves the participant row binding a staff member to a meeting
	FindByMeetingAndStaff(ctx context.Context, meetingID, staffID uuid.UUID) (*entities.Participant, error)
}
