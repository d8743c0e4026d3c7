package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile kullanıcı başına bir satır; kimlik sağlayıcıdaki hesapla 1:1.
type Profile struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	FullName  *string   `json:"full_name"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Summary flattens the profile into the owner block embedded in listings.
func (p *Profile) Summary() *OwnerSummary {
	return &OwnerSummary{
		ID:        p.UserID,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
	}
}
