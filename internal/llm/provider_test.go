package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroqProviderComplete(t *testing.T) {
	var gotAuth string
	var gotBody chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"hello"}}]}`))
	}))
	defer server.Close()

	p := NewGroqProvider("test-key", server.URL, "test-model", 5*time.Second)
	got, err := p.Complete(context.Background(), CompletionRequest{
		System:      "sys",
		User:        "usr",
		Temperature: 0.7,
		MaxTokens:   2048,
	})

	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotBody.Model)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "sys", gotBody.Messages[0].Content)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
	assert.Equal(t, 2048, gotBody.MaxTokens)
}

func TestGroqProviderNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer server.Close()

	p := NewGroqProvider("k", server.URL, "", time.Second)
	_, err := p.Complete(context.Background(), CompletionRequest{System: "s", User: "u"})

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusTooManyRequests, provErr.Status)
	assert.Equal(t, "groq", provErr.Provider)
	assert.Contains(t, provErr.Body, "rate limited")
}

func TestGroqProviderEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	p := NewGroqProvider("k", server.URL, "", time.Second)
	_, err := p.Complete(context.Background(), CompletionRequest{System: "s", User: "u"})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGeminiProviderComplete(t *testing.T) {
	var gotKey string
	var gotBody geminiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"salam"}]}}]}`))
	}))
	defer server.Close()

	p := NewGeminiProvider("gem-key", server.URL, "test-model", 5*time.Second)
	got, err := p.Complete(context.Background(), CompletionRequest{
		System:      "sys",
		User:        "usr",
		Temperature: 1.2,
		MaxTokens:   1024,
	})

	require.NoError(t, err)
	assert.Equal(t, "salam", got)
	assert.Equal(t, "gem-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "sys\n\nUser request: usr", gotBody.Contents[0].Parts[0].Text)
	assert.InDelta(t, 1.2, gotBody.GenerationConfig.Temperature, 0.001)
	assert.InDelta(t, 0.95, gotBody.GenerationConfig.TopP, 0.001)
	assert.Equal(t, 40, gotBody.GenerationConfig.TopK)
	assert.Equal(t, 1024, gotBody.GenerationConfig.MaxOutputTokens)
}

func TestGeminiProviderNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	p := NewGeminiProvider("k", server.URL, "", time.Second)
	_, err := p.Complete(context.Background(), CompletionRequest{System: "s", User: "u"})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGeminiProviderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer server.Close()

	p := NewGeminiProvider("k", server.URL, "", time.Second)
	_, err := p.Complete(context.Background(), CompletionRequest{System: "s", User: "u"})

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusBadRequest, provErr.Status)
	assert.Equal(t, "gemini", provErr.Provider)
}

func TestProviderDefaults(t *testing.T) {
	groq := NewGroqProvider("k", "", "", time.Second)
	assert.Equal(t, DefaultGroqModel, groq.model)

	gemini := NewGeminiProvider("k", "", "", time.Second)
	assert.Equal(t, DefaultGeminiModel, gemini.model)
}
