package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/virtual-office/internal/domain/entities"
)

// KnowledgeRepository defines the interface for knowledge base data access
type KnowledgeRepository interface {
	// Create adds an entry to a company's knowledge base
	Create(ctx context.Context, entry *entities.Knowledge) error

	// FindRecentByCompanyID retrieves the latest entries of a company, newest first
	FindRecentByCompanyID(ctx context.Context, companyID uuid.UUID, limit int) ([]*entities.Knowledge, error)

	// FindByCompanyID retrieves entries of a company with pagination
	FindByCompanyID(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*entities.Knowledge, int64, error)

	// Delete removes a knowledge entry
	Delete(ctx context.Context, id uuid.UUID) error
}
