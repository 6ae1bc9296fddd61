// Package types holds shared request/response shapes and token claims.
package types

import "github.com/google/uuid"

// TokenClaims is the decoded content of a session token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}
