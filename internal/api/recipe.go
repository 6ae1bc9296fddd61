package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashpazyar/backend/internal/middleware"
	"github.com/ashpazyar/backend/internal/recipe"
	"github.com/ashpazyar/backend/internal/service"
	"github.com/ashpazyar/backend/internal/types"
)

// SavedRecipeHandler serves the saved-recipes collection.
type SavedRecipeHandler struct {
	recipes *service.SavedRecipeService
	logger  *zap.Logger
}

func NewSavedRecipeHandler(recipes *service.SavedRecipeService, logger *zap.Logger) *SavedRecipeHandler {
	return &SavedRecipeHandler{
		recipes: recipes,
		logger:  logger,
	}
}

// List handles GET /api/v1/saved-recipes.
func (h *SavedRecipeHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	recipes, err := h.recipes.List(user.ID)
	if err != nil {
		h.logger.Error("listing saved recipes failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list saved recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// Save handles POST /api/v1/saved-recipes. The recipe is validated
// before it is stored so the collection never holds malformed entries.
func (h *SavedRecipeHandler) Save(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req types.SaveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := recipe.Validate(&req.Recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.recipes.Save(user.ID, req.Recipe); err != nil {
		if errors.Is(err, service.ErrRecipeAlreadySaved) {
			c.JSON(http.StatusConflict, gin.H{"error": "recipe already saved"})
			return
		}
		h.logger.Error("saving recipe failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save recipe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "recipe saved"})
}

// Delete handles DELETE /api/v1/saved-recipes?title=...
func (h *SavedRecipeHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	if err := h.recipes.Delete(user.ID, title); err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		h.logger.Error("deleting recipe failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}
