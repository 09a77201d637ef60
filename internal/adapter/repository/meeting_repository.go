package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
	"github.com/johnquangdev/virtual-office/internal/domain/repositories"
)

// MeetingRepository implements the meeting repository interface using GORM
type MeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{
		db: db,
	}
}

// Create creates a meeting together with its participant rows in one
// transaction; GORM inserts the Participants association with the meeting.
func (r *MeetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// FindByID finds a meeting by ID
func (r *MeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meeting).Error; err != nil {
		return nil, fmt.Errorf("failed to find meeting by ID: %w", err)
	}
	return &meeting, nil
}

// FindByIDWithParticipants finds a meeting with participants and their staff preloaded
func (r *MeetingRepository) FindByIDWithParticipants(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("meeting_participants.joined_at ASC")
		}).
		Preload("Participants.Staff").
		Where("id = ?", id).
		First(&meeting).Error; err != nil {
		return nil, fmt.Errorf("failed to find meeting with participants: %w", err)
	}
	return &meeting, nil
}

// List retrieves meetings matching the filters, newest first
func (r *MeetingRepository) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("company_id = ?", filters.CompanyID)

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count meetings: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var meetings []*entities.Meeting
	if err := query.Order("created_at DESC").Find(&meetings).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, total, nil
}

// Update updates a meeting
func (r *MeetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	if err := r.db.WithContext(ctx).Save(meeting).Error; err != nil {
		return fmt.Errorf("failed to update meeting: %w", err)
	}
	return nil
}

// Delete removes a meeting; messages, images, participants and action
// items go with it through the ON DELETE CASCADE constraints.
func (r *MeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Meeting{}).Error; err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}

// ParticipantRepository implements the participant repository interface using GORM
type ParticipantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{
		db: db,
	}
}

// FindByMeetingID finds all participants of a meeting in join order
func (r *ParticipantRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.Participant, error) {
	var participants []*entities.Participant
	if err := r.db.WithContext(ctx).
		Preload("Staff").
		Where("meeting_id = ?", meetingID).
		Order("joined_at ASC").
		Find(&participants).Error; err != nil {
		return nil, fmt.Errorf("failed to find participants by meeting ID: %w", err)
	}
	return participants, nil
}

// FindByMeetingAndStaff finds the participant row binding a staff member to a meeting
func (r *ParticipantRepository) FindByMeetingAndStaff(ctx context.Context, meetingID, staffID uuid.UUID) (*entities.Participant, error) {
	var participant entities.Participant
	if err := r.db.WithContext(ctx).
		Preload("Staff").
		Where("meeting_id = ? AND staff_id = ?", meetingID, staffID).
		First(&participant).Error; err != nil {
		return nil, fmt.Errorf("failed to find participant: %w", err)
	}
	return &participant, nil
}
