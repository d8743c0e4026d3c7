// Package repository owns all reads and writes for properties, their
// images and the favorites relation. Controllers never touch gorm or
// the object store directly.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kejani_backend/internal/filter"
	"kejani_backend/internal/model"
	"kejani_backend/pkg/cache"
	"kejani_backend/pkg/pagination"
	"kejani_backend/pkg/utils/storage"
)

const propertyCacheTTL = 10 * time.Minute

type PropertyRepository struct {
	db    *gorm.DB
	store storage.ObjectStorage
	cache cache.Cache
	log   zerolog.Logger
}

func NewPropertyRepository(db *gorm.DB, store storage.ObjectStorage, c cache.Cache, log zerolog.Logger) *PropertyRepository {
	if c == nil {
		c = cache.Noop{}
	}
	return &PropertyRepository{db: db, store: store, cache: c, log: log}
}

// PropertyList is the paginated listing envelope.
type PropertyList struct {
	Data       []model.Property `json:"data"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

type CreatePropertyInput struct {
	Title        string               `json:"title"`
	Description  *string              `json:"description"`
	Price        float64              `json:"price"`
	PropertyType model.PropertyType   `json:"property_type"`
	Status       model.PropertyStatus `json:"status"`
	Bedrooms     *int                 `json:"bedrooms"`
	Bathrooms    *int                 `json:"bathrooms"`
	Area         float64              `json:"area"`
	AreaUnit     string               `json:"area_unit"`
	Address      string               `json:"address"`
	City         string               `json:"city"`
	State        *string              `json:"state"`
	PostalCode   *string              `json:"postal_code"`
	Country      string               `json:"country"`
	Latitude     *float64             `json:"latitude"`
	Longitude    *float64             `json:"longitude"`
	Amenities    []string             `json:"amenities"`
	IsFeatured   bool                 `json:"is_featured"`

	Images []ImageSource `json:"-"`
}

// UpdatePropertyInput carries a partial update; nil fields are left
// untouched. A non-nil Images slice replaces the whole image set.
type UpdatePropertyInput struct {
	Title        *string               `json:"title"`
	Description  *string               `json:"description"`
	Price        *float64              `json:"price"`
	PropertyType *model.PropertyType   `json:"property_type"`
	Status       *model.PropertyStatus `json:"status"`
	Bedrooms     *int                  `json:"bedrooms"`
	Bathrooms    *int                  `json:"bathrooms"`
	Area         *float64              `json:"area"`
	AreaUnit     *string               `json:"area_unit"`
	Address      *string               `json:"address"`
	City         *string               `json:"city"`
	State        *string               `json:"state"`
	PostalCode   *string               `json:"postal_code"`
	Country      *string               `json:"country"`
	Latitude     *float64              `json:"latitude"`
	Longitude    *float64              `json:"longitude"`
	Amenities    []string              `json:"amenities"`
	IsFeatured   *bool                 `json:"is_featured"`

	Images []ImageSource `json:"-"`
}

// List returns active properties matching the filters, newest first by
// default. With zero favorites in favorites-only mode the primary query
// is skipped entirely.
func (r *PropertyRepository) List(ctx context.Context, f filter.Params) (*PropertyList, error) {
	f.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}

	if f.FavoritesOnly && f.FavoritesUserID != "" {
		ids, err := r.ListFavoriteIDs(ctx, f.FavoritesUserID)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return &PropertyList{Data: []model.Property{}, Page: f.Page, Limit: f.Limit}, nil
		}
		f.FavoriteIDs = ids
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Property{}).Scopes(scope(f)).
		Count(&total).Error; err != nil {
		return nil, fmt.Errorf("could not count properties: %w", err)
	}

	var rows []model.Property
	err := r.db.WithContext(ctx).Scopes(scope(f)).
		Preload("Images", orderImages).
		Preload("Profile").
		Order(orderClause(f)).
		Offset(pagination.Offset(f.Page, f.Limit)).
		Limit(f.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not list properties: %w", err)
	}

	for i := range rows {
		reshape(&rows[i])
	}

	return &PropertyList{
		Data:       rows,
		Total:      total,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: pagination.TotalPages(total, f.Limit),
	}, nil
}

// GetByID fetches a single property by id. Soft-deleted rows are still
// returned here: owners need them for audit and restore flows, so the
// is_active filter applies to listings only.
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*model.Property, error) {
	key := propertyCacheKey(id)
	var cached model.Property
	if hit, err := r.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	var p model.Property
	err := r.db.WithContext(ctx).
		Preload("Images", orderImages).
		Preload("Profile").
		Where("id = ?", id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not fetch property: %w", err)
	}

	reshape(&p)

	if err := r.cache.Set(ctx, key, p, propertyCacheTTL); err != nil {
		r.log.Debug().Err(err).Str("property_id", id).Msg("cache set failed")
	}
	return &p, nil
}

// Create inserts a property for the owner and runs the image pipeline.
// Status, area unit and country fall back to for_sale/sqm/Kenya.
func (r *PropertyRepository) Create(ctx context.Context, ownerUserID string, in CreatePropertyInput) (*model.Property, error) {
	if ownerUserID == "" {
		return nil, ErrUnauthenticated
	}

	property := model.Property{
		Title:        in.Title,
		Description:  in.Description,
		Price:        in.Price,
		PropertyType: in.PropertyType,
		Status:       in.Status,
		Bedrooms:     in.Bedrooms,
		Bathrooms:    in.Bathrooms,
		Area:         in.Area,
		AreaUnit:     in.AreaUnit,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		PostalCode:   in.PostalCode,
		Country:      in.Country,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Amenities:    datatypes.NewJSONSlice(in.Amenities),
		IsFeatured:   in.IsFeatured,
		IsActive:     true,
		UserID:       ownerUserID,
	}

	if err := r.db.WithContext(ctx).Create(&property).Error; err != nil {
		return nil, fmt.Errorf("could not create property: %w", err)
	}

	r.attachImages(ctx, property.ID, in.Images)

	return r.GetByID(ctx, property.ID)
}

// Update applies a partial update to a property the caller owns.
// Ownership is enforced as a query predicate: a mismatched owner is a
// silent no-op, never an error, and leaves the row and its images alone.
func (r *PropertyRepository) Update(ctx context.Context, id, ownerUserID string, in UpdatePropertyInput) (*model.Property, error) {
	if ownerUserID == "" {
		return nil, ErrUnauthenticated
	}

	owned, err := r.ownedBy(ctx, id, ownerUserID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return r.GetByID(ctx, id)
	}

	updates := updateColumns(in)
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&model.Property{}).
			Where("id = ? AND user_id = ?", id, ownerUserID).
			Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("could not update property: %w", err)
		}
	}

	if in.Images != nil {
		// Full replacement, not a merge: drop every existing row, then
		// re-run the attachment pipeline over the new set.
		if err := r.db.WithContext(ctx).
			Where("property_id = ?", id).
			Delete(&model.PropertyImage{}).Error; err != nil {
			return nil, fmt.Errorf("could not replace images: %w", err)
		}
		r.attachImages(ctx, id, in.Images)
	}

	r.invalidate(ctx, id)
	return r.GetByID(ctx, id)
}

// SoftDelete marks the property inactive. Returns whether a row the
// caller owns was affected.
func (r *PropertyRepository) SoftDelete(ctx context.Context, id, ownerUserID string) (bool, error) {
	if ownerUserID == "" {
		return false, ErrUnauthenticated
	}

	res := r.db.WithContext(ctx).Model(&model.Property{}).
		Where("id = ? AND user_id = ?", id, ownerUserID).
		Update("is_active", false)
	if res.Error != nil {
		return false, fmt.Errorf("could not delete property: %w", res.Error)
	}

	r.invalidate(ctx, id)
	return res.RowsAffected > 0, nil
}

// ToggleFavorite flips the favorite state for a (user, property) pair
// and reports the resulting state. The unique index on the pair keeps
// concurrent toggles from ever accumulating rows.
func (r *PropertyRepository) ToggleFavorite(ctx context.Context, userID, propertyID string) (bool, error) {
	if userID == "" {
		return false, ErrUnauthenticated
	}

	res := r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&model.Favorite{})
	if res.Error != nil {
		return false, fmt.Errorf("could not toggle favorite: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	fav := model.Favorite{UserID: userID, PropertyID: propertyID}
	if err := r.db.WithContext(ctx).Create(&fav).Error; err != nil {
		// A concurrent toggle may have won the insert; the end state is
		// still favorited.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, fmt.Errorf("could not add favorite: %w", err)
	}
	return true, nil
}

// ListFavoriteIDs returns the property ids the user has favorited.
func (r *PropertyRepository) ListFavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("property_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("could not fetch favorites: %w", err)
	}
	return ids, nil
}

// IsFavorited reports whether the user has favorited the property.
func (r *PropertyRepository) IsFavorited(ctx context.Context, userID, propertyID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("could not check favorite: %w", err)
	}
	return count > 0, nil
}

func (r *PropertyRepository) ownedBy(ctx context.Context, id, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Property{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("could not check ownership: %w", err)
	}
	return count > 0, nil
}

func (r *PropertyRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Del(ctx, propertyCacheKey(id)); err != nil {
		r.log.Debug().Err(err).Str("property_id", id).Msg("cache invalidation failed")
	}
}

func propertyCacheKey(id string) string { return "property:" + id }

func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("property_images.position ASC")
}

// reshape attaches the denormalized owner summary and normalizes the
// images array. The raw profile join never leaves the repository.
func reshape(p *model.Property) {
	if p.Images == nil {
		p.Images = []model.PropertyImage{}
	}
	if p.Profile != nil {
		p.Owner = p.Profile.Summary()
		p.Profile = nil
	}
}

func updateColumns(in UpdatePropertyInput) map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.PropertyType != nil {
		updates["property_type"] = *in.PropertyType
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.Bedrooms != nil {
		updates["bedrooms"] = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		updates["bathrooms"] = *in.Bathrooms
	}
	if in.Area != nil {
		updates["area"] = *in.Area
	}
	if in.AreaUnit != nil {
		updates["area_unit"] = *in.AreaUnit
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.City != nil {
		updates["city"] = *in.City
	}
	if in.State != nil {
		updates["state"] = *in.State
	}
	if in.PostalCode != nil {
		updates["postal_code"] = *in.PostalCode
	}
	if in.Country != nil {
		updates["country"] = *in.Country
	}
	if in.Latitude != nil {
		updates["latitude"] = *in.Latitude
	}
	if in.Longitude != nil {
		updates["longitude"] = *in.Longitude
	}
	if in.Amenities != nil {
		updates["amenities"] = datatypes.NewJSONSlice(in.Amenities)
	}
	if in.IsFeatured != nil {
		updates["is_featured"] = *in.IsFeatured
	}
	return updates
}
