package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ashpazyar/backend/internal/middleware"
	"github.com/ashpazyar/backend/internal/recipe"
	"github.com/ashpazyar/backend/internal/service"
)

func setupSavedRecipeRouter(t *testing.T) (*gin.Engine, *http.Cookie) {
	t.Helper()

	db := newTestDB(t)
	auth := service.NewAuthService(db, "api-test-secret")
	authHandler := NewAuthHandler(auth, false, zap.NewNop())
	recipeHandler := NewSavedRecipeHandler(service.NewSavedRecipeService(db), zap.NewNop())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/users/register", authHandler.Register)

	saved := v1.Group("/saved-recipes", middleware.AuthMiddleware(auth))
	saved.GET("", recipeHandler.List)
	saved.POST("", recipeHandler.Save)
	saved.DELETE("", recipeHandler.Delete)

	reg := do(t, r, http.MethodPost, "/api/v1/users/register",
		`{"name":"Sara","email":"sara@example.com","password":"password123"}`)
	require.Equal(t, http.StatusCreated, reg.Code)

	return r, authCookie(t, reg)
}

func sampleBody(t *testing.T) string {
	t.Helper()
	payload, err := json.Marshal(map[string]any{"recipe": recipe.Sample()})
	require.NoError(t, err)
	return string(payload)
}

func TestSaveListDelete(t *testing.T) {
	r, cookie := setupSavedRecipeRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/saved-recipes", sampleBody(t), cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	list := do(t, r, http.MethodGet, "/api/v1/saved-recipes", "", cookie)
	require.Equal(t, http.StatusOK, list.Code)

	var resp struct {
		Recipes []recipe.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &resp))
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, recipe.Sample().Title, resp.Recipes[0].Title)

	del := do(t, r, http.MethodDelete,
		"/api/v1/saved-recipes?title="+"Simple+Garlic+Pasta", "", cookie)
	assert.Equal(t, http.StatusOK, del.Code)

	list = do(t, r, http.MethodGet, "/api/v1/saved-recipes", "", cookie)
	require.Equal(t, http.StatusOK, list.Code)
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &resp))
	assert.Empty(t, resp.Recipes)
}

func TestSaveDuplicateConflict(t *testing.T) {
	r, cookie := setupSavedRecipeRouter(t)

	require.Equal(t, http.StatusCreated,
		do(t, r, http.MethodPost, "/api/v1/saved-recipes", sampleBody(t), cookie).Code)
	assert.Equal(t, http.StatusConflict,
		do(t, r, http.MethodPost, "/api/v1/saved-recipes", sampleBody(t), cookie).Code)
}

func TestSaveInvalidRecipe(t *testing.T) {
	r, cookie := setupSavedRecipeRouter(t)

	// Title alone is not a valid recipe.
	w := do(t, r, http.MethodPost, "/api/v1/saved-recipes", `{"recipe":{"title":"X"}}`, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMissingRecipe(t *testing.T) {
	r, cookie := setupSavedRecipeRouter(t)

	w := do(t, r, http.MethodDelete, "/api/v1/saved-recipes?title=Nope", "", cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodDelete, "/api/v1/saved-recipes", "", cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSavedRecipesRequireSession(t *testing.T) {
	r, _ := setupSavedRecipeRouter(t)

	assert.Equal(t, http.StatusUnauthorized,
		do(t, r, http.MethodGet, "/api/v1/saved-recipes", "").Code)
	assert.Equal(t, http.StatusUnauthorized,
		do(t, r, http.MethodPost, "/api/v1/saved-recipes", sampleBody(t)).Code)
}
