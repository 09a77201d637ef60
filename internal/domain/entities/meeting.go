package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingStatus represents the lifecycle state of a meeting
type MeetingStatus string

const (
	MeetingStatusActive MeetingStatus = "active"
	MeetingStatusEnded  MeetingStatus = "ended"
)

// Meeting represents a conversation session between the user and AI staff.
// ImageSeq is the display-order counter for meeting images; it only ever
// increases, so orders are never reused after an image is deleted.
type Meeting struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID   uuid.UUID     `gorm:"type:uuid;not null;index" json:"company_id"`
	Company     *Company      `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title"`
	MeetingType string        `gorm:"type:varchar(50);not null;default:'general'" json:"meeting_type"`
	Status      MeetingStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	Summary     *string       `gorm:"type:text" json:"summary,omitempty"`
	ImageSeq    int           `gorm:"not null;default:0" json:"-"`
	CreatedAt   time.Time     `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"default:now()" json:"updated_at"`
	EndedAt     *time.Time    `json:"ended_at,omitempty"`

	Participants []Participant `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// IsActive checks whether the meeting still accepts messages
func (m *Meeting) IsActive() bool {
	return m.Status == MeetingStatusActive
}

// IsEnded checks whether the meeting has been closed
func (m *Meeting) IsEnded() bool {
	return m.Status == MeetingStatusEnded
}

// End transitions the meeting to ended and records the close timestamp
func (m *Meeting) End() {
	now := time.Now()
	m.Status = MeetingStatusEnded
	m.EndedAt = &now
}

// Participant binds a staff persona to a meeting together with the
// generation provider/model the persona uses in this specific meeting.
// Participants are created at meeting creation and immutable afterwards.
type Participant struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID uuid.UUID `gorm:"type:uuid;not null;index" json:"meeting_id"`
	StaffID   uuid.UUID `gorm:"type:uuid;not null;index" json:"staff_id"`
	Staff     *Staff    `gorm:"foreignKey:StaffID" json:"staff,omitempty"`

	LLMProvider string  `gorm:"type:varchar(50);not null;default:'gemini'" json:"llm_provider"`
	LLMModel    *string `gorm:"type:varchar(100)" json:"llm_model,omitempty"`

	JoinedAt  time.Time `gorm:"default:now()" json:"joined_at"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "meeting_participants"
}

// ModelName returns the configured model override or an empty string
func (p *Participant) ModelName() string {
	if p.LLMModel == nil {
		return ""
	}
	return *p.LLMModel
}
