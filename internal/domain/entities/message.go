package entities

import (
	"time"

	"github.com/google/uuid"
)

// SenderType identifies who authored a message
type SenderType string

const (
	SenderTypeUser  SenderType = "user"
	SenderTypeStaff SenderType = "staff"
)

// Message is one entry in a meeting transcript. Messages are append-only:
// they are created once and never edited. A message sent by a staff persona
// carries the participant's StaffID; user messages leave it nil.
type Message struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"meeting_id"`
	StaffID    *uuid.UUID `gorm:"type:uuid;index" json:"staff_id,omitempty"`
	SenderType SenderType `gorm:"type:varchar(20);not null" json:"sender_type"`
	SenderName string     `gorm:"type:varchar(255);not null" json:"sender_name"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	ImageURL   *string    `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	CreatedAt  time.Time  `gorm:"default:now();index" json:"created_at"`
}

// TableName specifies the table name for Message
func (Message) TableName() string {
	return "meeting_messages"
}

// NewUserMessage creates a message authored by the human user
func NewUserMessage(meetingID uuid.UUID, senderName, content string) *Message {
	return &Message{
		ID:         uuid.New(),
		MeetingID:  meetingID,
		SenderType: SenderTypeUser,
		SenderName: senderName,
		Content:    content,
		CreatedAt:  time.Now(),
	}
}

// NewStaffMessage creates a message authored by a staff persona
func NewStaffMessage(meetingID, staffID uuid.UUID, senderName, content string) *Message {
	return &Message{
		ID:         uuid.New(),
		MeetingID:  meetingID,
		StaffID:    &staffID,
		SenderType: SenderTypeStaff,
		SenderName: senderName,
		Content:    content,
		CreatedAt:  time.Now(),
	}
}
