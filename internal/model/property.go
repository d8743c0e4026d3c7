package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Property Types
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypeOffice     PropertyType = "office"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
	PropertyTypeOther      PropertyType = "other"
)

// Property Status
type PropertyStatus string

const (
	PropertyStatusForSale PropertyStatus = "for_sale"
	PropertyStatusForRent PropertyStatus = "for_rent"
	PropertyStatusSold    PropertyStatus = "sold"
	PropertyStatusRented  PropertyStatus = "rented"
)

// Rentable reports whether the status places the listing on the rental
// market rather than the sales market.
func (s PropertyStatus) Rentable() bool {
	return s == PropertyStatusForRent || s == PropertyStatusRented
}

type Property struct {
	ID           string         `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string         `json:"title" gorm:"not null"`
	Description  *string        `json:"description" gorm:"type:text"`
	Price        float64        `json:"price" gorm:"not null;check:price >= 0"`
	PropertyType PropertyType   `json:"property_type" gorm:"not null;index"`
	Status       PropertyStatus `json:"status" gorm:"not null;default:for_sale;index"`

	Bedrooms  *int    `json:"bedrooms"`
	Bathrooms *int    `json:"bathrooms"`
	Area      float64 `json:"area" gorm:"not null;check:area >= 0"`
	AreaUnit  string  `json:"area_unit" gorm:"default:sqm"`

	// Location fields
	Address    string   `json:"address" gorm:"type:text;not null"`
	City       string   `json:"city" gorm:"not null;index"`
	State      *string  `json:"state"`
	PostalCode *string  `json:"postal_code"`
	Country    string   `json:"country" gorm:"default:Kenya"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`

	Amenities datatypes.JSONSlice[string] `json:"amenities"`

	IsFeatured bool `json:"is_featured" gorm:"default:false"`
	// IsActive is the soft-delete marker. Inactive rows stay retrievable
	// by id for their owner but never appear in listings.
	IsActive bool `json:"is_active" gorm:"default:true;index"`

	UserID string `json:"user_id" gorm:"type:uuid;not null;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// İlişkiler
	Images  []PropertyImage `json:"images" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Profile *Profile        `json:"-" gorm:"foreignKey:UserID;references:UserID"`
	Owner   *OwnerSummary   `json:"user,omitempty" gorm:"-"`
}

// OwnerSummary is the denormalized owner block attached to listings in
// place of the raw profile join.
type OwnerSummary struct {
	ID        string  `json:"id"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

// BeforeCreate assigns the id and owner-side defaults before insert.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = PropertyStatusForSale
	}
	if p.AreaUnit == "" {
		p.AreaUnit = "sqm"
	}
	if p.Country == "" {
		p.Country = "Kenya"
	}
	return nil
}

type PropertyImage struct {
	ID         string `json:"id" gorm:"type:uuid;primaryKey"`
	PropertyID string `json:"property_id" gorm:"type:uuid;not null;index"`
	URL        string `json:"url" gorm:"not null"`
	IsPrimary  bool   `json:"is_primary" gorm:"default:false"`
	// Position preserves resolved upload order; position 0 is primary.
	Position  int       `json:"position" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

func (i *PropertyImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
