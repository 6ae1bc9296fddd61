package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ashpazyar/backend/config"
	"github.com/ashpazyar/backend/internal/service"
)

func setupOAuthRouter(t *testing.T, google config.GoogleConfig) *gin.Engine {
	t.Helper()

	db := newTestDB(t)
	auth := service.NewAuthService(db, "api-test-secret")
	oauth := service.NewGoogleOAuthService(db, google)
	h := NewOAuthHandler(oauth, auth, "http://localhost:3000", false, zap.NewNop())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/auth/google", h.Redirect)
	r.GET("/api/v1/auth/google/callback", h.Callback)
	return r
}

func TestOAuthRedirectDisabled(t *testing.T) {
	r := setupOAuthRouter(t, config.GoogleConfig{})

	w := do(t, r, http.MethodGet, "/api/v1/auth/google", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestOAuthRedirectSetsStateCookie(t *testing.T) {
	r := setupOAuthRouter(t, config.GoogleConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/api/v1/auth/google/callback",
	})

	w := do(t, r, http.MethodGet, "/api/v1/auth/google", "")
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)

	location := w.Header().Get("Location")
	assert.Contains(t, location, "accounts.google.com")

	var state *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "oauth_state" {
			state = cookie
		}
	}
	require.NotNil(t, state)
	assert.True(t, state.HttpOnly)
	assert.NotEmpty(t, state.Value)
	assert.Contains(t, location, state.Value)
}

func TestOAuthCallbackRejectsStateMismatch(t *testing.T) {
	r := setupOAuthRouter(t, config.GoogleConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/api/v1/auth/google/callback",
	})

	w := do(t, r, http.MethodGet, "/api/v1/auth/google/callback?state=forged&code=x", "",
		&http.Cookie{Name: "oauth_state", Value: "real"})
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "auth_error=invalid_state")
}

func TestOAuthCallbackMissingCode(t *testing.T) {
	r := setupOAuthRouter(t, config.GoogleConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/api/v1/auth/google/callback",
	})

	w := do(t, r, http.MethodGet, "/api/v1/auth/google/callback?state=s1", "",
		&http.Cookie{Name: "oauth_state", Value: "s1"})
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "auth_error=missing_code")
}
