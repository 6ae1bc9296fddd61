package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ashpazyar/backend/internal/recipe"
)

// RecipeBlob stores a full recipe snapshot in a JSONB column.
type RecipeBlob recipe.Recipe

// Value implements the driver.Valuer interface
func (r RecipeBlob) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements the sql.Scanner interface
func (r *RecipeBlob) Scan(value interface{}) error {
	if value == nil {
		*r = RecipeBlob{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for RecipeBlob: %T", value)
	}

	return json.Unmarshal(bytes, r)
}

// SavedRecipe associates a user with a recipe snapshot. The title is the
// natural key within a user's saved set: one title per user, duplicates
// rejected rather than overwritten.
type SavedRecipe struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_saved_recipes_user_title" json:"user_id"`
	Title     string     `gorm:"size:255;not null;uniqueIndex:idx_saved_recipes_user_title" json:"title"`
	Recipe    RecipeBlob `gorm:"type:jsonb;not null" json:"recipe"`
}

func (SavedRecipe) TableName() string {
	return "saved_recipes"
}

func (s *SavedRecipe) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
