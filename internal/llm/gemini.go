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
	// DefaultGeminiAPIURL is the generateContent REST endpoint root.
	DefaultGeminiAPIURL = "https://generativelanguage.googleapis.com/v1beta"
	// DefaultGeminiModel is used when no model is configured.
	DefaultGeminiModel = "gemini-2.5-flash-lite"
)

// GeminiProvider talks the generate-content protocol: one concatenated
// prompt text plus a generation config, answered as a candidate list
// with nested content parts.
type GeminiProvider struct {
	client *resty.Client
	model  string
}

// NewGeminiProvider builds a Gemini-backed provider. apiURL and model
// fall back to defaults when empty.
func NewGeminiProvider(apiKey, apiURL, model string, timeout time.Duration) *GeminiProvider {
	if apiURL == "" {
		apiURL = DefaultGeminiAPIURL
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client := resty.New().
		SetBaseURL(apiURL).
		SetTimeout(timeout).
		SetHeader("x-goog-api-key", apiKey)

	return &GeminiProvider{client: client, model: model}
}

func (p *GeminiProvider) Name() string { return "gemini" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Complete sends a single generateContent request. The protocol has no
// separate system role, so the system instruction and the user text are
// concatenated into one part.
func (p *GeminiProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: req.System + "\n\nUser request: " + req.User}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     req.Temperature,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: req.MaxTokens,
		},
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(fmt.Sprintf("/models/%s:generateContent", p.model))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", &ProviderError{Provider: p.Name(), Status: resp.StatusCode(), Body: resp.String()}
	}

	var result geminiResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}
