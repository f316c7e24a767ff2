package llm

import (
	"context"
	"fmt"
	"sort"
)

// Registry maps provider ids to backends. Adding a provider is a
// registration, not a new branch at every call site.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry builds a registry from configuration, registering every
// backend whose API key is set.
func NewRegistry(ctx context.Context, cfg Config) (*Registry, error) {
	r := &Registry{providers: make(map[string]Provider)}

	if cfg.OpenAI.APIKey != "" {
		p, err := NewOpenAIProvider(cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("initializing openai provider: %w", err)
		}
		r.Register(ProviderOpenAI, p)
	}

	if cfg.Anthropic.APIKey != "" {
		p, err := NewAnthropicProvider(cfg.Anthropic)
		if err != nil {
			return nil, fmt.Errorf("initializing anthropic provider: %w", err)
		}
		r.Register(ProviderAnthropic, p)
	}

	if cfg.Gemini.APIKey != "" {
		p, err := NewGeminiProvider(ctx, cfg.Gemini)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini provider: %w", err)
		}
		r.Register(ProviderGemini, p)
	}

	if cfg.DeepSeek.APIKey != "" {
		p, err := NewDeepSeekProvider(cfg.DeepSeek)
		if err != nil {
			return nil, fmt.Errorf("initializing deepseek provider: %w", err)
		}
		r.Register(ProviderDeepSeek, p)
	}

	return r, nil
}

// Register adds or replaces a backend under the given id.
func (r *Registry) Register(id string, p Provider) {
	r.providers[id] = p
}

// Get returns the backend for the given id, or ErrUnknownProvider.
func (r *Registry) Get(id string) (Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, &ErrUnknownProvider{Name: id}
	}
	return p, nil
}

// Names returns the registered provider ids, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for id := range r.providers {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}
