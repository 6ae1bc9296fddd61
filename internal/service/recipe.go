package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ashpazyar/backend/internal/models"
	"github.com/ashpazyar/backend/internal/recipe"
)

var (
	ErrRecipeAlreadySaved = errors.New("recipe already saved")
	ErrRecipeNotFound     = errors.New("recipe not found")
)

// SavedRecipeService manages each user's saved recipe collection. The
// recipe title is the key within a collection.
type SavedRecipeService struct {
	db *gorm.DB
}

func NewSavedRecipeService(db *gorm.DB) *SavedRecipeService {
	return &SavedRecipeService{db: db}
}

// List returns the user's saved recipes, newest first.
func (s *SavedRecipeService) List(userID uuid.UUID) ([]recipe.Recipe, error) {
	var rows []models.SavedRecipe
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	recipes := make([]recipe.Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, recipe.Recipe(row.Recipe))
	}
	return recipes, nil
}

// Save stores a recipe under its title. Saving a title the user already
// has returns ErrRecipeAlreadySaved; the stored copy is not overwritten.
func (s *SavedRecipeService) Save(userID uuid.UUID, r recipe.Recipe) error {
	var existing models.SavedRecipe
	err := s.db.Where("user_id = ? AND title = ?", userID, r.Title).First(&existing).Error
	if err == nil {
		return ErrRecipeAlreadySaved
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row := models.SavedRecipe{
		UserID: userID,
		Title:  r.Title,
		Recipe: models.RecipeBlob(r),
	}
	if err := s.db.Create(&row).Error; err != nil {
		// Lost the race against a concurrent save of the same title.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrRecipeAlreadySaved
		}
		return err
	}
	return nil
}

// Delete removes the saved recipe with the given title.
func (s *SavedRecipeService) Delete(userID uuid.UUID, title string) error {
	result := s.db.Where("user_id = ? AND title = ?", userID, title).Delete(&models.SavedRecipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}
