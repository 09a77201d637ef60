package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/virtual-office/internal/domain/entities"
)

// MeetingImageRepository defines the interface for meeting image data access
type MeetingImageRepository interface {
	// Create inserts an image and assigns its DisplayOrder from the meeting's
	// monotonic counter, atomically with respect to concurrent inserts
	Create(ctx context.Context, image *entities.MeetingImage) error

	// FindByDisplayOrder retrieves the image addressed as @img<order> in a meeting
	FindByDisplayOrder(ctx context.Context, meetingID uuid.UUID, displayOrder int) (*entities.MeetingImage, error)

	// FindByFilePath retrieves an image of a meeting by its stored file path
	FindByFilePath(ctx context.Context, meetingID uuid.UUID, filePath string) (*entities.MeetingImage, error)

	// FindByMeetingID retrieves all images of a meeting ordered by display order
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingImage, error)

	// Delete removes an image row; the display order is never reissued
	Delete(ctx context.Context, id uuid.UUID) error
}
