package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Staff represents an AI persona employed by a company
type Staff struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"company_id"`
	Company      *Company       `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	DepartmentID *uuid.UUID     `gorm:"type:uuid;index" json:"department_id,omitempty"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Role         string         `gorm:"type:varchar(255);not null" json:"role"`
	Personality  *string        `gorm:"type:text" json:"personality,omitempty"`
	Expertise    datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"expertise,omitempty"`
	IsActive     bool           `gorm:"not null;default:true;index" json:"is_active"`
	FiredAt      *time.Time     `json:"fired_at,omitempty"`
	CreatedAt    time.Time      `gorm:"default:now()" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Staff
func (Staff) TableName() string {
	return "staff"
}

// ExpertiseList decodes the expertise JSON array. Malformed or empty
// data yields an empty list rather than an error.
func (s *Staff) ExpertiseList() []string {
	if len(s.Expertise) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(s.Expertise, &list); err != nil {
		return nil
	}
	return list
}

// PersonalityText returns the personality free text or an empty string
func (s *Staff) PersonalityText() string {
	if s.Personality == nil {
		return ""
	}
	return *s.Personality
}
