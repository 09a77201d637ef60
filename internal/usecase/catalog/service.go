package catalog

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/virtual-office/internal/infrastructure/cache"
	"github.com/johnquangdev/virtual-office/pkg/llm"
)

// modelCacheTTL bounds how stale the advertised model lists may get.
// Backend catalogs change rarely and listing them costs a network call.
const modelCacheTTL = 10 * time.Minute

// ProviderInfo describes one configured provider and the models it serves
type ProviderInfo struct {
	Name   string   `json:"name"`
	Models []string `json:"models"`
}

// Service exposes the provider and model catalog. Everything here is
// advisory: lookups never fail, they return what is known at the time.
type Service struct {
	registry *llm.Registry
	cache    cache.Store
	logger   *zap.Logger
}

// NewService creates a new catalog service
func NewService(registry *llm.Registry, store cache.Store, logger *zap.Logger) *Service {
	return &Service{
		registry: registry,
		cache:    store,
		logger:   logger,
	}
}

// ListProviders returns every configured provider with its current models,
// sorted by provider name for stable output
func (s *Service) ListProviders(ctx context.Context) []ProviderInfo {
	providers := s.registry.Providers()
	sort.Slice(providers, func(i, j int) bool { return providers[i] < providers[j] })

	out := make([]ProviderInfo, 0, len(providers))
	for _, p := range providers {
		out = append(out, ProviderInfo{
			Name:   string(p),
			Models: s.ListModels(ctx, p),
		})
	}
	return out
}

// ListModels returns the models a provider currently serves, cached to
// avoid hammering the backend. An unknown provider or a backend that
// cannot be reached yields an empty list.
func (s *Service) ListModels(ctx context.Context, provider llm.Provider) []string {
	key := "llm:models:" + string(provider)

	if raw, ok := s.cache.Get(ctx, key); ok {
		var models []string
		if err := json.Unmarshal([]byte(raw), &models); err == nil {
			return models
		}
		s.cache.Delete(ctx, key)
	}

	client, err := s.registry.Client(provider)
	if err != nil {
		s.logger.Warn("model listing for unconfigured provider",
			zap.String("provider", string(provider)))
		return []string{}
	}

	models := client.ListModels(ctx)
	if len(models) > 0 {
		if raw, err := json.Marshal(models); err == nil {
			s.cache.Set(ctx, key, string(raw), modelCacheTTL)
		}
	}
	return models
}
