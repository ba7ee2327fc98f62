package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OpenRouterClient implements Client against the OpenAI-compatible
// chat-completions endpoint.
type OpenRouterClient struct {
	cfg    *Config
	apiKey string
	http   *http.Client
}

// NewOpenRouterClient creates an OpenRouter-backed client.
func NewOpenRouterClient(cfg *Config, apiKey string) (*OpenRouterClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenRouterURL
	}
	return &OpenRouterClient{
		cfg:    cfg,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type openRouterRequest struct {
	Model       string    `json:"model"`
	Temperature float32   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Messages    []Message `json:"messages"`
}

type openRouterResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Chat sends the conversation to OpenRouter and returns the first choice's
// content. Non-2xx statuses come back as *UpstreamError with any error
// message the upstream body declares; the body itself is never logged.
func (c *OpenRouterClient) Chat(ctx context.Context, req Request) (string, error) {
	payload := openRouterRequest{
		Model:       c.cfg.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    req.Messages,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{Status: resp.StatusCode, Detail: upstreamDetail(resp.Body)}
	}

	var decoded openRouterResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode chat completion response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	content := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("no content in response")
	}
	if req.JSONOnly {
		return CleanJSONBlock(content), nil
	}
	return content, nil
}

// Close is a no-op; the client holds no connections beyond the pool.
func (c *OpenRouterClient) Close() error { return nil }

// upstreamDetail pulls the error message out of an upstream error body, if
// it declares one. The read is capped so an adversarial upstream cannot
// balloon memory.
func upstreamDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var decoded struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return ""
	}
	return strings.TrimSpace(decoded.Error.Message)
}
