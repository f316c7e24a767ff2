package llm

// ProviderSettings configures one backend. An empty APIKey leaves the
// backend unregistered.
type ProviderSettings struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Config holds settings for all four backends.
type Config struct {
	OpenAI    ProviderSettings
	Anthropic ProviderSettings
	Gemini    ProviderSettings
	DeepSeek  ProviderSettings
}

// Provider ids as they appear on the wire.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderDeepSeek  = "deepseek"
)

const (
	defaultOpenAIModel    = "gpt-4o"
	defaultAnthropicModel = "claude-sonnet-4-20250514"
	defaultGeminiModel    = "gemini-2.0-flash"
	defaultDeepSeekModel  = "deepseek-chat"

	defaultDeepSeekBaseURL = "https://api.deepseek.com/v1"
)

func resolveModel(model, fallback string) string {
	if model != "" {
		return model
	}
	return fallback
}
