package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultGroqAPIURL is the OpenAI-compatible Groq endpoint.
	DefaultGroqAPIURL = "https://api.groq.com/openai/v1"
	// DefaultGroqModel is used when no model is configured.
	DefaultGroqModel = "moonshotai/kimi-k2-instruct-0905"
)

// GroqProvider talks the chat-completions protocol: a system message plus
// a user message, answered as a choice list.
type GroqProvider struct {
	client *resty.Client
	model  string
}

// NewGroqProvider builds a Groq-backed provider. apiURL and model fall
// back to defaults when empty.
func NewGroqProvider(apiKey, apiURL, model string, timeout time.Duration) *GroqProvider {
	if apiURL == "" {
		apiURL = DefaultGroqAPIURL
	}
	if model == "" {
		model = DefaultGroqModel
	}

	client := resty.New().
		SetBaseURL(apiURL).
		SetTimeout(timeout).
		SetHeader("Authorization", "Bearer "+apiKey)

	return &GroqProvider{client: client, model: model}
}

func (p *GroqProvider) Name() string { return "groq" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a single chat-completion request and extracts the first
// choice's content.
func (p *GroqProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	body := chatCompletionRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("groq request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", &ProviderError{Provider: p.Name(), Status: resp.StatusCode(), Body: resp.String()}
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to decode groq response: %w", err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}

	return result.Choices[0].Message.Content, nil
}
