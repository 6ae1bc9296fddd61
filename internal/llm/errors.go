package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable means no provider credential is configured.
	// Recipe and suggestion callers fall back to mock mode on it; it is
	// never a user-visible error for those flows.
	ErrProviderUnavailable = errors.New("no llm provider configured")

	// ErrEmptyCompletion means the provider answered successfully but no
	// text could be extracted.
	ErrEmptyCompletion = errors.New("empty completion from provider")

	// ErrInvalidSuggestions means the suggestions payload parsed but was
	// not a non-empty array of strings.
	ErrInvalidSuggestions = errors.New("invalid suggestions format")
)

// ProviderError is a non-success response from an LLM backend.
type ProviderError struct {
	Provider string
	Status   int
	Body     string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s api error (status %d)", e.Provider, e.Status)
}

// MalformedResponseError is a completion that could not be parsed as
// JSON. Raw carries the full completion for operator diagnostics.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed llm response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// SchemaViolationError is syntactically valid JSON that does not satisfy
// the recipe schema. Kept distinct from MalformedResponseError because it
// implies the model ignored field constraints rather than added noise.
type SchemaViolationError struct {
	Err error
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("llm response violates recipe schema: %v", e.Err)
}

func (e *SchemaViolationError) Unwrap() error { return e.Err }
