package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
)

// CompanyRepository implements the company repository interface using GORM
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{
		db: db,
	}
}

// FindByID finds a company by ID
func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	var company entities.Company
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&company).Error; err != nil {
		return nil, fmt.Errorf("failed to find company by ID: %w", err)
	}
	return &company, nil
}

// StaffRepository implements the staff repository interface using GORM
type StaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{
		db: db,
	}
}

// FindByID finds a staff member by ID
func (r *StaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Staff, error) {
	var staff entities.Staff
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to find staff by ID: %w", err)
	}
	return &staff, nil
}

// FindActiveByCompanyID finds all active staff of a company
func (r *StaffRepository) FindActiveByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*entities.Staff, error) {
	var staff []*entities.Staff
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Order("name ASC").
		Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to find active staff: %w", err)
	}
	return staff, nil
}
