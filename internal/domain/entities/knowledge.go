package entities

import (
	"time"

	"github.com/google/uuid"
)

// Knowledge is one entry in a company's knowledge base. Entries feed the
// context assembled for staff responses; Content may be arbitrarily long
// and is truncated at read time, never at rest.
type Knowledge struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Source    *string   `gorm:"type:varchar(255)" json:"source,omitempty"`
	CreatedAt time.Time `gorm:"default:now();index" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Knowledge
func (Knowledge) TableName() string {
	return "knowledge_base"
}

// Snippet returns the content truncated to max runes with an ellipsis
func (k *Knowledge) Snippet(max int) string {
	runes := []rune(k.Content)
	if len(runes) <= max {
		return k.Content
	}
	return string(runes[:max]) + "..."
}
