package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
)

// MeetingImageRepository implements the meeting image repository interface using GORM
type MeetingImageRepository struct {
	db *gorm.DB
}

// NewMeetingImageRepository creates a new meeting image repository
func NewMeetingImageRepository(db *gorm.DB) *MeetingImageRepository {
	return &MeetingImageRepository{
		db: db,
	}
}

// Create inserts an image and assigns its display order from the meeting's
// counter. The counter bump and the insert run in one transaction, so
// concurrent uploads to the same meeting get distinct orders and a deleted
// image's order is never handed out again.
func (r *MeetingImageRepository) Create(ctx context.Context, image *entities.MeetingImage) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq int
		if err := tx.Raw(
			"UPDATE meetings SET image_seq = image_seq + 1 WHERE id = ? RETURNING image_seq",
			image.MeetingID,
		).Scan(&seq).Error; err != nil {
			return fmt.Errorf("failed to advance image counter: %w", err)
		}
		if seq == 0 {
			return gorm.ErrRecordNotFound
		}

		image.DisplayOrder = seq
		if err := tx.Create(image).Error; err != nil {
			return fmt.Errorf("failed to create meeting image: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store meeting image: %w", err)
	}
	return nil
}

// FindByDisplayOrder retrieves the image addressed as @img<order> in a meeting
func (r *MeetingImageRepository) FindByDisplayOrder(ctx context.Context, meetingID uuid.UUID, displayOrder int) (*entities.MeetingImage, error) {
	var image entities.MeetingImage
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND display_order = ?", meetingID, displayOrder).
		First(&image).Error; err != nil {
		return nil, fmt.Errorf("failed to find image by display order: %w", err)
	}
	return &image, nil
}

// FindByFilePath retrieves an image of a meeting by its stored file path
func (r *MeetingImageRepository) FindByFilePath(ctx context.Context, meetingID uuid.UUID, filePath string) (*entities.MeetingImage, error) {
	var image entities.MeetingImage
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND file_path = ?", meetingID, filePath).
		First(&image).Error; err != nil {
		return nil, fmt.Errorf("failed to find image by file path: %w", err)
	}
	return &image, nil
}

// FindByMeetingID retrieves all images of a meeting ordered by display order
func (r *MeetingImageRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.MeetingImage, error) {
	var images []*entities.MeetingImage
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("display_order ASC").
		Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to find images by meeting ID: %w", err)
	}
	return images, nil
}

// Delete removes an image row
func (r *MeetingImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.MeetingImage{}).Error; err != nil {
		return fmt.Errorf("failed to delete meeting image: %w", err)
	}
	return nil
}
