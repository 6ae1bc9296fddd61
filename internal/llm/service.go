package llm

import (
	"context"

	"go.uber.org/zap"

	"github.com/ashpazyar/backend/internal/recipe"
)

// Generation parameters per mode. Suggestions run hotter to encourage
// variety; step answers stay short.
const (
	recipeTemperature      = 0.7
	recipeMaxTokens        = 2048
	suggestionsTemperature = 1.2
	suggestionsMaxTokens   = 1024
	answerTemperature      = 0.7
	answerMaxTokens        = 512
)

// RecipeResult is a validated recipe plus whether it came from mock mode.
type RecipeResult struct {
	Recipe *recipe.Recipe
	Mock   bool
}

// SuggestionsResult is up to five title suggestions plus the mock flag.
type SuggestionsResult struct {
	Suggestions []string
	Mock        bool
}

// Service runs the three-stage pipeline: prompt assembly, one completion
// request, normalization and validation. Stateless; one instance serves
// all requests.
type Service struct {
	recipes     Provider
	suggestions Provider
	logger      *zap.Logger
}

// NewService wires providers per mode. Chat completions (Groq) serve
// recipes and step answers when configured; generate-content (Gemini)
// serves suggestions. Either backend covers the other's modes when only
// one credential is present. Both nil means mock mode.
func NewService(groq, gemini Provider, logger *zap.Logger) *Service {
	recipes := groq
	if recipes == nil {
		recipes = gemini
	}
	suggestions := gemini
	if suggestions == nil {
		suggestions = groq
	}

	return &Service{
		recipes:     recipes,
		suggestions: suggestions,
		logger:      logger,
	}
}

// MockMode reports whether no provider credential is configured.
func (s *Service) MockMode() bool {
	return s.recipes == nil
}

// GenerateRecipe produces a validated recipe for the user's request.
// With no provider configured it returns the fixed sample recipe,
// flagged mock, without any network call.
func (s *Service) GenerateRecipe(ctx context.Context, prompt string, lang Language) (*RecipeResult, error) {
	if s.recipes == nil {
		s.logger.Warn("no llm credential configured, returning sample recipe")
		return &RecipeResult{Recipe: recipe.Sample(), Mock: true}, nil
	}

	raw, err := s.recipes.Complete(ctx, CompletionRequest{
		System:      RecipeSystemPrompt(lang),
		User:        prompt,
		Temperature: recipeTemperature,
		MaxTokens:   recipeMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	r, err := NormalizeRecipe(raw)
	if err != nil {
		return nil, err
	}

	return &RecipeResult{Recipe: r}, nil
}

// SuggestTitles produces up to five recipe title suggestions. With no
// provider configured it returns the fixed sample list, flagged mock.
func (s *Service) SuggestTitles(ctx context.Context, prompt string, lang Language) (*SuggestionsResult, error) {
	if s.suggestions == nil {
		s.logger.Warn("no llm credential configured, returning sample suggestions")
		return &SuggestionsResult{Suggestions: recipe.SampleSuggestions(), Mock: true}, nil
	}

	raw, err := s.suggestions.Complete(ctx, CompletionRequest{
		System:      SuggestionsSystemPrompt(lang, randomSeed()),
		User:        prompt,
		Temperature: suggestionsTemperature,
		MaxTokens:   suggestionsMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	titles, err := NormalizeSuggestions(raw)
	if err != nil {
		return nil, err
	}

	return &SuggestionsResult{Suggestions: titles}, nil
}

// AnswerStepQuestion answers a free-text question about one recipe step.
// Unlike the other modes there is no mock fallback: without a credential
// the caller gets ErrProviderUnavailable.
func (s *Service) AnswerStepQuestion(ctx context.Context, question string, step recipe.Step, lang Language) (string, error) {
	if s.recipes == nil {
		return "", ErrProviderUnavailable
	}

	raw, err := s.recipes.Complete(ctx, CompletionRequest{
		System:      StepSystemPrompt(step, lang),
		User:        question,
		Temperature: answerTemperature,
		MaxTokens:   answerMaxTokens,
	})
	if err != nil {
		return "", err
	}

	return NormalizeAnswer(raw)
}
