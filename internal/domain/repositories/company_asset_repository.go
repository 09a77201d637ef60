package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/virtual-office/internal/domain/entities"
)

// CompanyAssetRepository defines the interface for shared asset data access
type CompanyAssetRepository interface {
	// Create registers a new asset for a company
	Create(ctx context.Context, asset *entities.CompanyAsset) error

	// FindBySlug retrieves an asset of a company by its slug name
	FindBySlug(ctx context.Context, companyID uuid.UUID, assetName string) (*entities.CompanyAsset, error)

	// FindByCompanyID retrieves all assets of a company
	FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*entities.CompanyAsset, error)

	// Delete removes an asset registration
	Delete(ctx context.Context, id uuid.UUID) error
}
