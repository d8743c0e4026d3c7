package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite links a user to a property. The composite unique index keeps
// concurrent toggles from producing more than one row per pair.
type Favorite struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_property"`
	PropertyID string    `json:"property_id" gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_property"`
	CreatedAt  time.Time `json:"created_at"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
