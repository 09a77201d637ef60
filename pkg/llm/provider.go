package llm

import (
	"context"
	"fmt"
	"strings"
)

// Provider identifies a supported generation backend
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// ParseProvider normalizes a provider name from user input. Unknown names
// are rejected rather than defaulted so misconfigured participants fail loudly.
func ParseProvider(name string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(name))) {
	case ProviderGemini:
		return ProviderGemini, nil
	case ProviderOllama:
		return ProviderOllama, nil
	default:
		return "", fmt.Errorf("unsupported provider %q", name)
	}
}

// GenerateRequest carries everything a backend needs for one generation
type GenerateRequest struct {
	Prompt          string
	SystemPrompt    string
	Model           string
	Temperature     float64
	AttachmentPaths []string
}

// Chunk is one streamed fragment. A non-nil Err is terminal: the backend
// sends it as the last value before closing the channel.
type Chunk struct {
	Text string
	Err  error
}

// Client is the contract every generation backend implements
type Client interface {
	// Stream starts a generation and delivers chunks as they arrive.
	// The returned channel is closed when generation completes or fails.
	Stream(ctx context.Context, req GenerateRequest) (<-chan Chunk, error)

	// Complete runs a generation to completion and returns the full text
	Complete(ctx context.Context, req GenerateRequest) (string, error)

	// ListModels returns the models the backend currently serves.
	// Advisory only: any failure yields an empty list, never an error.
	ListModels(ctx context.Context) []string
}

// Registry dispatches provider names to configured clients
type Registry struct {
	clients map[Provider]Client
}

// NewRegistry creates a registry over the given clients
func NewRegistry(clients map[Provider]Client) *Registry {
	return &Registry{clients: clients}
}

// Client resolves a provider to its client
func (r *Registry) Client(p Provider) (Client, error) {
	c, ok := r.clients[p]
	if !ok {
		return nil, fmt.Errorf("no client configured for provider %q", p)
	}
	return c, nil
}

// Providers returns the configured provider names
func (r *Registry) Providers() []Provider {
	out := make([]Provider, 0, len(r.clients))
	for p := range r.clients {
		out = append(out, p)
	}
	return out
}
