package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
)

// KnowledgeRepository implements the knowledge repository interface using GORM
type KnowledgeRepository struct {
	db *gorm.DB
}

// NewKnowledgeRepository creates a new knowledge repository
func NewKnowledgeRepository(db *gorm.DB) *KnowledgeRepository {
	return &KnowledgeRepository{
		db: db,
	}
}

// Create adds an entry to a company's knowledge base
func (r *KnowledgeRepository) Create(ctx context.Context, entry *entities.Knowledge) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create knowledge entry: %w", err)
	}
	return nil
}

// FindRecentByCompanyID retrieves the latest entries of a company, newest first
func (r *KnowledgeRepository) FindRecentByCompanyID(ctx context.Context, companyID uuid.UUID, limit int) ([]*entities.Knowledge, error) {
	var entries []*entities.Knowledge
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to find recent knowledge entries: %w", err)
	}
	return entries, nil
}

// FindByCompanyID retrieves entries of a company with pagination
func (r *KnowledgeRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*entities.Knowledge, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.Knowledge{}).
		Where("company_id = ?", companyID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count knowledge entries: %w", err)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var entries []*entities.Knowledge
	if err := query.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find knowledge entries: %w", err)
	}
	return entries, total, nil
}

// Delete removes a knowledge entry
func (r *KnowledgeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Knowledge{}).Error; err != nil {
		return fmt.Errorf("failed to delete knowledge entry: %w", err)
	}
	return nil
}
