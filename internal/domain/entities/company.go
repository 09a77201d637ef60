package entities

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a virtual company that owns staff, meetings and knowledge
type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Industry    *string   `gorm:"type:varchar(100)" json:"industry,omitempty"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Company
func (Company) TableName() string {
	return "companies"
}

// DisplayName returns the company name, falling back to a generic label
func (c *Company) DisplayName() string {
	if c == nil || c.Name == "" {
		return "the company"
	}
	return c.Name
}
