package llm

import "context"

// Provider is the abstraction over one external content backend.
// Consumers build a prompt, call Complete, and get the backend's raw
// text reply. Structured results are extracted downstream because the
// backends are known to wrap JSON in markdown fences or prepend
// commentary.
type Provider interface {
	// Complete sends the request and returns the reply text.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes what to send to the backend.
type Request struct {
	// System is the system prompt. Sets the backend's role and constraints.
	System string

	// Messages is the conversation. For single-turn generation (the
	// common case here) this contains one user message.
	Messages []Message

	// MaxTokens is the maximum number of tokens in the reply.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means the
	// provider default.
	Temperature float64
}

// Message is a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the backend's reply.
type Response struct {
	// Text is the raw reply text, fences and all.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
