package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/virtual-office/internal/infrastructure/cache"
	"github.com/johnquangdev/virtual-office/pkg/llm"
)

type fakeClient struct {
	models []string
	calls  int
}

func (f *fakeClient) Stream(_ context.Context, _ llm.GenerateRequest) (<-chan llm.Chunk, error) {
	return nil, errors.New("not used")
}

func (f *fakeClient) Complete(_ context.Context, _ llm.GenerateRequest) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeClient) ListModels(_ context.Context) []string {
	f.calls++
	return f.models
}

func TestListProviders_SortedWithModels(t *testing.T) {
	ollama := &fakeClient{models: []string{"llama3.2"}}
	gemini := &fakeClient{models: []string{"gemini-2.0-flash", "gemini-pro"}}
	registry := llm.NewRegistry(map[llm.Provider]llm.Client{
		llm.ProviderOllama: ollama,
		llm.ProviderGemini: gemini,
	})
	svc := NewService(registry, cache.NewMemoryStore(), zap.NewNop())

	infos := svc.ListProviders(context.Background())
	require.Len(t, infos, 2)
	assert.Equal(t, "gemini", infos[0].Name)
	assert.Equal(t, []string{"gemini-2.0-flash", "gemini-pro"}, infos[0].Models)
	assert.Equal(t, "ollama", infos[1].Name)
	assert.Equal(t, []string{"llama3.2"}, infos[1].Models)
}

func TestListModels_CachesBackendResponse(t *testing.T) {
	client := &fakeClient{models: []string{"gemini-pro"}}
	registry := llm.NewRegistry(map[llm.Provider]llm.Client{llm.ProviderGemini: client})
	svc := NewService(registry, cache.NewMemoryStore(), zap.NewNop())

	ctx := context.Background()
	first := svc.ListModels(ctx, llm.ProviderGemini)
	second := svc.ListModels(ctx, llm.ProviderGemini)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.calls)
}

func TestListModels_EmptyResultIsNotCached(t *testing.T) {
	client := &fakeClient{}
	registry := llm.NewRegistry(map[llm.Provider]llm.Client{llm.ProviderOllama: client})
	svc := NewService(registry, cache.NewMemoryStore(), zap.NewNop())

	ctx := context.Background()
	assert.Empty(t, svc.ListModels(ctx, llm.ProviderOllama))
	assert.Empty(t, svc.ListModels(ctx, llm.ProviderOllama))
	// the backend is retried on the next request instead of pinning the miss
	assert.Equal(t, 2, client.calls)
}

func TestListModels_UnknownProvider(t *testing.T) {
	registry := llm.NewRegistry(nil)
	svc := NewService(registry, cache.NewMemoryStore(), zap.NewNop())

	models := svc.ListModels(context.Background(), llm.Provider("openai"))
	assert.Empty(t, models)
}
