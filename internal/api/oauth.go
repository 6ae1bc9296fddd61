package api

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ashpazyar/backend/internal/middleware"
	"github.com/ashpazyar/backend/internal/service"
)

const (
	stateCookieName   = "oauth_state"
	stateCookieMaxAge = 600
)

// OAuthHandler serves the Google sign-in flow.
type OAuthHandler struct {
	oauth        *service.GoogleOAuthService
	auth         *service.AuthService
	logger       *zap.Logger
	frontendURL  string
	secureCookie bool
}

func NewOAuthHandler(oauth *service.GoogleOAuthService, auth *service.AuthService, frontendURL string, secureCookie bool, logger *zap.Logger) *OAuthHandler {
	return &OAuthHandler{
		oauth:        oauth,
		auth:         auth,
		logger:       logger,
		frontendURL:  frontendURL,
		secureCookie: secureCookie,
	}
}

// Redirect handles GET /api/v1/auth/google. It sets a short-lived state
// cookie and sends the browser to the Google consent screen.
func (h *OAuthHandler) Redirect(c *gin.Context) {
	if !h.oauth.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "google sign-in is not configured"})
		return
	}

	state := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, stateCookieMaxAge, "/", "", h.secureCookie, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauth.AuthURL(state))
}

// Callback handles GET /api/v1/auth/google/callback. On success the
// session cookie is set and the browser returns to the frontend.
func (h *OAuthHandler) Callback(c *gin.Context) {
	if !h.oauth.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "google sign-in is not configured"})
		return
	}

	state := c.Query("state")
	cookieState, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != cookieState {
		h.redirectWithError(c, "invalid_state")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, "", -1, "/", "", h.secureCookie, true)

	code := c.Query("code")
	if code == "" {
		h.redirectWithError(c, "missing_code")
		return
	}

	user, err := h.oauth.Authenticate(c.Request.Context(), code)
	if err != nil {
		h.logger.Error("google sign-in failed", zap.Error(err))
		h.redirectWithError(c, "auth_failed")
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		h.logger.Error("token generation failed", zap.Error(err))
		h.redirectWithError(c, "auth_failed")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, token, cookieMaxAge, "/", "", h.secureCookie, true)
	c.Redirect(http.StatusTemporaryRedirect, h.frontendURL)
}

func (h *OAuthHandler) redirectWithError(c *gin.Context, code string) {
	c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"?auth_error="+url.QueryEscape(code))
}
