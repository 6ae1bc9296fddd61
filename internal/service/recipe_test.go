package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ashpazyar/backend/internal/models"
	"github.com/ashpazyar/backend/internal/recipe"
)

func seedUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()
	user := models.User{Name: "Test", Email: email}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func TestSaveAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedRecipeService(db)
	userID := seedUser(t, db, "a@example.com")

	r := recipe.Sample()
	require.NoError(t, svc.Save(userID, *r))

	got, err := svc.List(userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, r.Title, got[0].Title)
	assert.Equal(t, r.Ingredients, got[0].Ingredients)
	assert.Equal(t, r.Steps, got[0].Steps)
}

func TestSaveDuplicateTitle(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedRecipeService(db)
	userID := seedUser(t, db, "a@example.com")

	first := recipe.Recipe{Title: "Tea", TotalTime: "5 minutes"}
	require.NoError(t, svc.Save(userID, first))

	// Same title, different content: rejected, original kept.
	second := recipe.Recipe{Title: "Tea", TotalTime: "10 minutes"}
	assert.ErrorIs(t, svc.Save(userID, second), ErrRecipeAlreadySaved)

	got, err := svc.List(userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "5 minutes", got[0].TotalTime)
}

func TestSaveSameTitleDifferentUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedRecipeService(db)
	userA := seedUser(t, db, "a@example.com")
	userB := seedUser(t, db, "b@example.com")

	r := recipe.Recipe{Title: "Tea"}
	require.NoError(t, svc.Save(userA, r))
	require.NoError(t, svc.Save(userB, r))

	gotA, err := svc.List(userA)
	require.NoError(t, err)
	assert.Len(t, gotA, 1)
}

func TestDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedRecipeService(db)
	userID := seedUser(t, db, "a@example.com")

	require.NoError(t, svc.Save(userID, recipe.Recipe{Title: "Tea"}))
	require.NoError(t, svc.Delete(userID, "Tea"))

	got, err := svc.List(userID)
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.ErrorIs(t, svc.Delete(userID, "Tea"), ErrRecipeNotFound)
}

func TestDeleteOtherUsersRecipe(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedRecipeService(db)
	userA := seedUser(t, db, "a@example.com")
	userB := seedUser(t, db, "b@example.com")

	require.NoError(t, svc.Save(userA, recipe.Recipe{Title: "Tea"}))
	assert.ErrorIs(t, svc.Delete(userB, "Tea"), ErrRecipeNotFound)

	got, err := svc.List(userA)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestListEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedRecipeService(db)
	userID := seedUser(t, db, "a@example.com")

	got, err := svc.List(userID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
