// Package api holds the HTTP handlers.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashpazyar/backend/internal/llm"
	"github.com/ashpazyar/backend/internal/types"
)

// LLMHandler serves the three generation endpoints.
type LLMHandler struct {
	service *llm.Service
	logger  *zap.Logger
}

func NewLLMHandler(service *llm.Service, logger *zap.Logger) *LLMHandler {
	return &LLMHandler{
		service: service,
		logger:  logger,
	}
}

// Generate handles POST /api/v1/recipes/generate.
func (h *LLMHandler) Generate(c *gin.Context) {
	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.GenerateRecipe(c.Request.Context(), req.Prompt, parseLanguage(req.Language))
	if err != nil {
		h.logGenerationFailure("recipe generation failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe": result.Recipe,
		"mock":   result.Mock,
	})
}

// Suggestions handles POST /api/v1/recipes/suggestions.
func (h *LLMHandler) Suggestions(c *gin.Context) {
	var req types.SuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.SuggestTitles(c.Request.Context(), req.Prompt, parseLanguage(req.Language))
	if err != nil {
		h.logGenerationFailure("suggestion generation failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate suggestions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": result.Suggestions,
		"mock":        result.Mock,
	})
}

// StepQuestion handles POST /api/v1/recipes/step-question. This endpoint
// has no mock fallback: without a configured provider it returns 503.
func (h *LLMHandler) StepQuestion(c *gin.Context) {
	var req types.StepQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.service.AnswerStepQuestion(c.Request.Context(), req.Question, req.Step, parseLanguage(req.Language))
	if err != nil {
		if errors.Is(err, llm.ErrProviderUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assistant is not available"})
			return
		}
		h.logGenerationFailure("step question failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to answer question"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// logGenerationFailure records the failure with as much provider detail
// as the error carries. Raw model output stays in the logs; responses to
// the client carry only a generic message.
func (h *LLMHandler) logGenerationFailure(msg string, err error) {
	fields := []zap.Field{zap.Error(err)}

	var provErr *llm.ProviderError
	if errors.As(err, &provErr) {
		fields = append(fields,
			zap.String("provider", provErr.Provider),
			zap.Int("status", provErr.Status),
			zap.String("body", provErr.Body),
		)
	}

	var malformed *llm.MalformedResponseError
	if errors.As(err, &malformed) {
		fields = append(fields, zap.String("raw_response", malformed.Raw))
	}

	h.logger.Error(msg, fields...)
}

func parseLanguage(lang string) llm.Language {
	if lang == string(llm.LanguagePersian) {
		return llm.LanguagePersian
	}
	return llm.LanguageEnglish
}
