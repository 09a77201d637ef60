package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingImage is an attachment scoped to one meeting, addressed in user
// text as @img<DisplayOrder>. DisplayOrder is 1-based and assigned from the
// meeting's image counter at insert time; it is unique within the meeting
// and never reassigned, even after other images are removed.
type MeetingImage struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID    uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_meeting_display_order" json:"meeting_id"`
	MessageID    *uuid.UUID `gorm:"type:uuid" json:"message_id,omitempty"`
	FilePath     string     `gorm:"type:varchar(500);not null" json:"file_path"`
	DisplayOrder int        `gorm:"not null;uniqueIndex:idx_meeting_display_order" json:"display_order"`
	Analysis     *string    `gorm:"type:text" json:"analysis,omitempty"`
	Description  *string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time  `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for MeetingImage
func (MeetingImage) TableName() string {
	return "meeting_images"
}

// DescriptionText returns the stored description or an empty string
func (i *MeetingImage) DescriptionText() string {
	if i.Description == nil {
		return ""
	}
	return *i.Description
}
