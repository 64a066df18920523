package utils

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatClientInterface is implemented by every LLM provider the chat service
// can talk to. ChatStream invokes onDelta for each content fragment and
// returns the full reply once the stream ends.
type ChatClientInterface interface {
	Chat(ctx context.Context, messages []ChatMessage) (string, error)
	ChatStream(ctx context.Context, messages []ChatMessage, onDelta func(delta string) error) (string, error)
}

type ChatClientOptions struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
}

// NewChatClient creates either an OpenAI-compatible or a Gemini client based on the provider name.
func NewChatClient(ctx context.Context, opts ChatClientOptions) (ChatClientInterface, error) {
	switch strings.ToLower(opts.Provider) {
	case "", "openai", "qwen":
		return NewOpenAIChatClient(opts), nil
	case "gemini":
		return NewGeminiChatClient(ctx, opts)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", opts.Provider)
	}
}

// classifyLLMStatus maps a provider HTTP status to the service sentinel errors.
func classifyLLMStatus(status int, err error) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrLLMUnauthorized, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", ErrLLMRateLimited, err)
	default:
		return fmt.Errorf("%w: %v", ErrUnexpectedBehaviorOfAI, err)
	}
}
