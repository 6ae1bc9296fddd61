package types

import "github.com/ashpazyar/backend/internal/recipe"

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest changes profile fields. Setting a new password
// requires the current one.
type UpdateProfileRequest struct {
	Name            string `json:"name" binding:"omitempty,max=100"`
	Email           string `json:"email" binding:"omitempty,email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"omitempty,min=8"`
}

// GenerateRequest asks for a full recipe from a free-form prompt.
type GenerateRequest struct {
	Prompt   string `json:"prompt" binding:"required"`
	Language string `json:"language" binding:"omitempty,oneof=en fa"`
}

// SuggestionsRequest asks for dish title ideas.
type SuggestionsRequest struct {
	Prompt   string `json:"prompt"`
	Language string `json:"language" binding:"omitempty,oneof=en fa"`
}

// StepQuestionRequest asks a question about one step of a recipe the
// user is currently cooking.
type StepQuestionRequest struct {
	Question string      `json:"question" binding:"required"`
	Step     recipe.Step `json:"step"`
	Language string      `json:"language" binding:"omitempty,oneof=en fa"`
}

// SaveRecipeRequest stores a recipe in the user's collection.
type SaveRecipeRequest struct {
	Recipe recipe.Recipe `json:"recipe" binding:"required"`
}
