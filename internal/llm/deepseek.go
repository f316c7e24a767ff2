package llm

import "fmt"

// DeepSeekProvider wraps OpenAIProvider with DeepSeek defaults.
// DeepSeek exposes an OpenAI-compatible API, so the underlying SDK is
// reused.
type DeepSeekProvider struct {
	*OpenAIProvider
}

// NewDeepSeekProvider creates a provider targeting the DeepSeek API.
func NewDeepSeekProvider(cfg ProviderSettings) (*DeepSeekProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("deepseek API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultDeepSeekBaseURL
	}

	inner, err := NewOpenAIProvider(ProviderSettings{
		APIKey:  cfg.APIKey,
		Model:   resolveModel(cfg.Model, defaultDeepSeekModel),
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, err
	}

	return &DeepSeekProvider{OpenAIProvider: inner}, nil
}
