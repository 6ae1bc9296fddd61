// Package recipe defines the recipe document shape shared by the
// generation pipeline, the HTTP layer and persistence.
package recipe

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Ingredient is a single recipe ingredient. Icon is advisory: unknown
// values are rendered with a generic fallback, never rejected.
type Ingredient struct {
	Name     string `json:"name" validate:"required"`
	Quantity string `json:"quantity,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

// Step is one cooking step. The id is a sequence number within the
// recipe, not a globally unique identifier.
type Step struct {
	ID          int      `json:"id"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description" validate:"required"`
	Duration    string   `json:"duration,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
}

// Servings tolerates models that emit the serving count as a string
// ("4") instead of a number.
type Servings int

func (s *Servings) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*s = Servings(int(num))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		var parsed int
		if _, err := fmt.Sscanf(str, "%d", &parsed); err == nil {
			*s = Servings(parsed)
			return nil
		}
	}

	return fmt.Errorf("invalid servings value: %s", string(data))
}

// Recipe is the validated artifact the LLM pipeline produces and the
// saved-recipes store snapshots.
type Recipe struct {
	Title       string       `json:"title" validate:"required"`
	Servings    Servings     `json:"servings,omitempty" validate:"omitempty,gt=0"`
	TotalTime   string       `json:"totalTime,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Ingredients []Ingredient `json:"ingredients" validate:"dive"`
	Steps       []Step       `json:"steps" validate:"dive"`
	Notes       string       `json:"notes,omitempty"`
}

var validate = validator.New()

// Validate checks a parsed recipe against the schema. Ingredients and
// steps must be present (empty lists are tolerated, missing keys are
// not); every step needs a description.
func Validate(r *Recipe) error {
	if r.Ingredients == nil {
		return fmt.Errorf("missing required field: ingredients")
	}
	if r.Steps == nil {
		return fmt.Errorf("missing required field: steps")
	}
	return validate.Struct(r)
}
