package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
)

// CompanyAssetRepository implements the company asset repository interface using GORM
type CompanyAssetRepository struct {
	db *gorm.DB
}

// NewCompanyAssetRepository creates a new company asset repository
func NewCompanyAssetRepository(db *gorm.DB) *CompanyAssetRepository {
	return &CompanyAssetRepository{
		db: db,
	}
}

// Create registers a new asset for a company
func (r *CompanyAssetRepository) Create(ctx context.Context, asset *entities.CompanyAsset) error {
	if err := r.db.WithContext(ctx).Create(asset).Error; err != nil {
		return fmt.Errorf("failed to create company asset: %w", err)
	}
	return nil
}

// FindBySlug finds an asset of a company by its slug name
func (r *CompanyAssetRepository) FindBySlug(ctx context.Context, companyID uuid.UUID, assetName string) (*entities.CompanyAsset, error) {
	var asset entities.CompanyAsset
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND asset_name = ?", companyID, assetName).
		First(&asset).Error; err != nil {
		return nil, fmt.Errorf("failed to find asset by slug: %w", err)
	}
	return &asset, nil
}

// FindByCompanyID finds all assets of a company
func (r *CompanyAssetRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*entities.CompanyAsset, error) {
	var assets []*entities.CompanyAsset
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("asset_name ASC").
		Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to find assets by company ID: %w", err)
	}
	return assets, nil
}

// Delete removes an asset registration
func (r *CompanyAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.CompanyAsset{}).Error; err != nil {
		return fmt.Errorf("failed to delete company asset: %w", err)
	}
	return nil
}
