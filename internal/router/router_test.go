package router

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ashpazyar/backend/config"
	"github.com/ashpazyar/backend/internal/api"
	"github.com/ashpazyar/backend/internal/llm"
	"github.com/ashpazyar/backend/internal/models"
	"github.com/ashpazyar/backend/internal/service"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.SavedRecipe{}))

	log := zap.NewNop()
	auth := service.NewAuthService(db, "router-test-secret")

	handlers := Handlers{
		Health: api.NewHealthHandler(db),
		LLM:    api.NewLLMHandler(llm.NewService(nil, nil, log), log),
		Auth:   api.NewAuthHandler(auth, false, log),
		OAuth:  api.NewOAuthHandler(service.NewGoogleOAuthService(db, config.GoogleConfig{}), auth, "http://localhost:3000", false, log),
		Saved:  api.NewSavedRecipeHandler(service.NewSavedRecipeService(db), log),
	}

	return Setup(handlers, auth, log, Options{
		AllowedOrigins: []string{"http://localhost:3000"},
	})
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthRoute(t *testing.T) {
	h := setupRouter(t)
	w := get(t, h, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	h := setupRouter(t)

	assert.Equal(t, http.StatusUnauthorized, get(t, h, "/api/v1/users/me").Code)
	assert.Equal(t, http.StatusUnauthorized, get(t, h, "/api/v1/saved-recipes").Code)
}

func TestGoogleRouteDisabled(t *testing.T) {
	h := setupRouter(t)
	assert.Equal(t, http.StatusServiceUnavailable, get(t, h, "/api/v1/auth/google").Code)
}

func TestCORSHeaders(t *testing.T) {
	h := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recipes/generate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
