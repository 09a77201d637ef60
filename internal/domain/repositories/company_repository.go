package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/virtual-office/internal/domain/entities"
)

// CompanyRepository defines the interface for company data access
type CompanyRepository interface {
	// FindByID retrieves a company by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Company, error)
}

// StaffRepository defines the interface for staff data access
type StaffRepository interface {
	// FindByID retrieves a staff member by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Staff, error)

	// FindActiveByCompanyID retrieves all active staff of a company
	FindActiveByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*entities.Staff, error)
}
