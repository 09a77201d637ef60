package entities

import (
	"time"

	"github.com/google/uuid"
)

// CompanyAsset is a named file shared across a company, addressed in user
// text as @<AssetName>. AssetName is a lowercase slug unique per company.
type CompanyAsset struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_company_asset_name" json:"company_id"`
	AssetName   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_company_asset_name" json:"asset_name"`
	DisplayName string    `gorm:"type:varchar(255);not null" json:"display_name"`
	FilePath    string    `gorm:"type:varchar(500);not null" json:"file_path"`
	AssetType   string    `gorm:"type:varchar(50);not null;default:'image'" json:"asset_type"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	FileSize    int64     `gorm:"not null;default:0" json:"file_size"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for CompanyAsset
func (CompanyAsset) TableName() string {
	return "company_assets"
}

// Label returns the human-readable name, falling back to the slug
func (a *CompanyAsset) Label() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.AssetName
}
