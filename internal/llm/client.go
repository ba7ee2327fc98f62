package llm

import (
	"context"
	"fmt"
)

// Message roles accepted by Chat.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a chat-completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request carries one chat-completion call. Temperature and MaxTokens map
// straight onto the upstream request; JSONOnly asks the provider for a raw
// JSON response where the provider supports it.
type Request struct {
	Messages    []Message
	Temperature float32
	MaxTokens   int
	JSONOnly    bool
}

// Client is an abstraction over chat-completion providers.
type Client interface {
	// Chat sends the conversation upstream and returns the assistant's raw
	// text reply.
	Chat(ctx context.Context, req Request) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// UpstreamError reports a completed upstream call that returned an error
// status. Detail is safe to surface to clients; handlers must not log the
// raw upstream body.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("AI service error (%d)", e.Status)
}

// NewClient creates a client for the configured provider.
func NewClient(ctx context.Context, cfg *Config, apiKey string) (Client, error) {
	if cfg == nil {
		cfg = ConfigFromEnv()
	}

	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg, apiKey)
	default:
		return NewOpenRouterClient(cfg, apiKey)
	}
}
