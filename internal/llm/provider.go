// Package llm turns free-text user requests into validated recipe
// documents via an external completion provider: prompt assembly,
// a single completion request, then normalization and validation.
package llm

import "context"

// CompletionRequest is one prompt exchange: a fixed system instruction
// plus the user's text, with bounded output and a sampling temperature.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Provider abstracts an LLM backend. Implementations make exactly one
// request per call and never retry; timeouts belong to the HTTP client.
type Provider interface {
	// Complete returns the raw completion text for the request.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Name identifies the backend in logs and errors.
	Name() string
}
