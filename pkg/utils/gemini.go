package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiChatClient implements ChatClientInterface using Google's Gemini models.
type GeminiChatClient struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
}

func NewGeminiChatClient(ctx context.Context, opts ChatClientOptions) (*GeminiChatClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &GeminiChatClient{
		client:      client,
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   int32(opts.MaxTokens),
	}
	if c.model == "" {
		c.model = defaultGeminiModel
	}
	if c.temperature == 0 {
		c.temperature = defaultOpenAITemperature
	}
	if c.maxTokens == 0 {
		c.maxTokens = defaultOpenAIMaxTokens
	}
	return c, nil
}

// session builds a chat session whose history holds every message but the
// last one, which is returned as the prompt to send.
func (c *GeminiChatClient) session(messages []ChatMessage) (*genai.ChatSession, genai.Text, error) {
	system, history := splitGeminiHistory(messages)
	if len(history) == 0 || history[len(history)-1].Role != "user" {
		return nil, "", fmt.Errorf("%w: conversation must end with a user message", ErrInvalidInput)
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(c.temperature)
	m.SetMaxOutputTokens(c.maxTokens)
	if system != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	last := history[len(history)-1]
	cs := m.StartChat()
	cs.History = history[:len(history)-1]
	return cs, last.Parts[0].(genai.Text), nil
}

func splitGeminiHistory(messages []ChatMessage) (string, []*genai.Content) {
	var system []string
	history := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			system = append(system, msg.Content)
		case RoleAssistant:
			history = append(history, &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(msg.Content)}})
		default:
			history = append(history, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(msg.Content)}})
		}
	}
	return strings.Join(system, "\n\n"), history
}

func (c *GeminiChatClient) Chat(ctx context.Context, messages []ChatMessage) (string, error) {
	cs, prompt, err := c.session(messages)
	if err != nil {
		return "", err
	}

	resp, err := cs.SendMessage(ctx, prompt)
	if err != nil {
		return "", geminiError(err)
	}
	text := responseText(resp)
	if text == "" {
		return "", ErrUnexpectedBehaviorOfAI
	}
	return text, nil
}

func (c *GeminiChatClient) ChatStream(ctx context.Context, messages []ChatMessage, onDelta func(delta string) error) (string, error) {
	cs, prompt, err := c.session(messages)
	if err != nil {
		return "", err
	}

	var full strings.Builder
	iter := cs.SendMessageStream(ctx, prompt)
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return full.String(), geminiError(err)
		}
		delta := responseText(resp)
		if delta == "" {
			continue
		}
		full.WriteString(delta)
		if onDelta != nil {
			if err := onDelta(delta); err != nil {
				return full.String(), err
			}
		}
	}
	return full.String(), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

func geminiError(err error) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return classifyLLMStatus(gErr.Code, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return classifyLLMStatus(0, err)
}

// Close closes the Gemini client
func (c *GeminiChatClient) Close() error {
	return c.client.Close()
}
