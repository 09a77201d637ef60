package company

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
	"github.com/johnquangdev/virtual-office/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/virtual-office/internal/usecase/errors"
)

// Asset slugs double as mention tokens, so they follow the same shape the
// mention parser accepts.
var slugPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Service manages company-scoped resources: shared assets and the
// knowledge base that feeds persona prompts.
type Service struct {
	companies repositories.CompanyRepository
	assets    repositories.CompanyAssetRepository
	knowledge repositories.KnowledgeRepository
	logger    *zap.Logger
}

// NewService creates a company service
func NewService(
	companies repositories.CompanyRepository,
	assets repositories.CompanyAssetRepository,
	knowledge repositories.KnowledgeRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		companies: companies,
		assets:    assets,
		knowledge: knowledge,
		logger:    logger,
	}
}

// RegisterAssetInput represents input for registering a shared asset
type RegisterAssetInput struct {
	AssetName   string
	DisplayName string
	FilePath    string
	AssetType   string
	Description *string
	FileSize    int64
}

// RegisterAsset registers a file as mentionable via @<asset_name> in every
// meeting of the company
func (s *Service) RegisterAsset(ctx context.Context, companyID uuid.UUID, input RegisterAssetInput) (*entities.CompanyAsset, error) {
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrCompanyNotFound
		}
		return nil, err
	}

	slug := strings.ToLower(strings.TrimSpace(input.AssetName))
	if !slugPattern.MatchString(slug) {
		return nil, usecaseErrors.ErrInvalidInput
	}
	if strings.TrimSpace(input.FilePath) == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	if _, err := s.assets.FindBySlug(ctx, companyID, slug); err == nil {
		return nil, usecaseErrors.ErrAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	asset := &entities.CompanyAsset{
		ID:          uuid.New(),
		CompanyID:   companyID,
		AssetName:   slug,
		DisplayName: input.DisplayName,
		FilePath:    input.FilePath,
		AssetType:   input.AssetType,
		Description: input.Description,
		FileSize:    input.FileSize,
	}
	if asset.DisplayName == "" {
		asset.DisplayName = slug
	}
	if asset.AssetType == "" {
		asset.AssetType = "image"
	}

	if err := s.assets.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// ListAssets returns all assets of a company
func (s *Service) ListAssets(ctx context.Context, companyID uuid.UUID) ([]*entities.CompanyAsset, error) {
	return s.assets.FindByCompanyID(ctx, companyID)
}

// DeleteAsset removes an asset registration. Meeting images already
// materialized from the asset are left in place.
func (s *Service) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	if err := s.assets.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecaseErrors.ErrAssetNotFound
		}
		return err
	}
	return nil
}

// AddKnowledge appends an entry to the company knowledge base
func (s *Service) AddKnowledge(ctx context.Context, companyID uuid.UUID, title, content string, source *string) (*entities.Knowledge, error) {
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrCompanyNotFound
		}
		return nil, err
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	entry := &entities.Knowledge{
		ID:        uuid.New(),
		CompanyID: companyID,
		Title:     title,
		Content:   content,
		Source:    source,
	}
	if err := s.knowledge.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListKnowledge returns knowledge entries of a company, newest first
func (s *Service) ListKnowledge(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*entities.Knowledge, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.knowledge.FindByCompanyID(ctx, companyID, limit, offset)
}
