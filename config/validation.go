package config

import (
	"errors"
	"fmt"
)

// Validate checks the loaded configuration for values the server cannot
// run without. Provider keys are deliberately not required: without them
// the app serves deterministic sample responses.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret (JWT_SECRET) is required"))
	} else if len(cfg.Auth.JWTSecret) < 32 && cfg.IsProduction() {
		errs = append(errs, errors.New("auth.jwt_secret must be at least 32 characters in production"))
	}

	if cfg.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}

	switch cfg.App.Env {
	case "development", "test", "production":
	default:
		errs = append(errs, fmt.Errorf("app.env must be development, test or production, got %q", cfg.App.Env))
	}

	if cfg.Google.ClientID != "" && cfg.Google.RedirectURL == "" {
		errs = append(errs, errors.New("google.redirect_url is required when google sign-in is configured"))
	}

	return errors.Join(errs...)
}
