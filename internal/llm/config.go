// Package llm provides the chat-completion client abstraction behind the
// AI-backed endpoints, with pluggable providers and shared response
// post-processing.
package llm

import "os"

// Provider represents an upstream model provider.
type Provider string

// Supported providers. OpenRouter speaks the OpenAI-compatible
// chat-completion JSON the endpoints were built against; Gemini goes through
// the official SDK.
const (
	ProviderOpenRouter Provider = "openrouter"
	ProviderGemini     Provider = "gemini"
)

// Config holds provider selection and model naming for the client.
type Config struct {
	Provider Provider
	Model    string
	BaseURL  string // OpenRouter only; overridable for tests
}

// Defaults per provider. Both are deliberately small models: intake and
// enhancement are high-volume, low-complexity calls.
const (
	defaultOpenRouterModel = "meta-llama/llama-3.1-8b-instruct:free"
	defaultGeminiModel     = "gemini-2.5-flash"
	defaultOpenRouterURL   = "https://openrouter.ai/api/v1/chat/completions"
)

// ConfigFromEnv builds a Config from LLM_PROVIDER, OPENROUTER_MODEL /
// GEMINI_MODEL, and OPENROUTER_BASE_URL. Missing values use defaults.
func ConfigFromEnv() *Config {
	cfg := &Config{Provider: ProviderOpenRouter}
	if p := os.Getenv("LLM_PROVIDER"); p != "" {
		cfg.Provider = Provider(p)
	}

	switch cfg.Provider {
	case ProviderGemini:
		cfg.Model = getEnvString("GEMINI_MODEL", defaultGeminiModel)
	default:
		cfg.Model = getEnvString("OPENROUTER_MODEL", defaultOpenRouterModel)
		cfg.BaseURL = getEnvString("OPENROUTER_BASE_URL", defaultOpenRouterURL)
	}
	return cfg
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
