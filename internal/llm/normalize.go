package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/ashpazyar/backend/internal/recipe"
)

// maxSuggestions caps the suggestion list; extra entries are dropped,
// shorter lists pass through unpadded.
const maxSuggestions = 5

// fencePattern matches a markdown code-fence delimiter with an optional
// language tag. A missing closing fence (truncated output) is fine: we
// strip whatever delimiters exist and parse what's left.
var fencePattern = regexp.MustCompile("```[a-zA-Z]*\n?")

func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	return strings.TrimSpace(fencePattern.ReplaceAllString(text, ""))
}

// NormalizeRecipe turns a raw completion into a validated recipe.
// Pure and deterministic: the same input always yields the same output.
func NormalizeRecipe(raw string) (*recipe.Recipe, error) {
	text := stripFences(raw)
	if text == "" {
		return nil, ErrEmptyCompletion
	}

	var r recipe.Recipe
	if err := json.Unmarshal([]byte(text), &r); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}

	if err := recipe.Validate(&r); err != nil {
		return nil, &SchemaViolationError{Err: err}
	}

	return &r, nil
}

// NormalizeSuggestions turns a raw completion into at most five
// suggestion strings.
func NormalizeSuggestions(raw string) ([]string, error) {
	text := stripFences(raw)
	if text == "" {
		return nil, ErrEmptyCompletion
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}

	items, ok := parsed.([]any)
	if !ok || len(items) == 0 {
		return nil, ErrInvalidSuggestions
	}

	if len(items) > maxSuggestions {
		items = items[:maxSuggestions]
	}

	suggestions := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, ErrInvalidSuggestions
		}
		suggestions = append(suggestions, s)
	}

	return suggestions, nil
}

// NormalizeAnswer trims a plain-text completion for step questions.
func NormalizeAnswer(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
