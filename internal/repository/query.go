package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"kejani_backend/internal/filter"
	"kejani_backend/internal/model"
)

// scope translates filter params into the remote predicate conjunction.
// It must stay semantically equivalent to filter.Matches. The is_active
// constraint is always applied and is not user-overridable.
func scope(f filter.Params) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		q = q.Where("is_active = ?", true)

		if f.Search != "" {
			term := "%" + f.Search + "%"
			q = q.Where("title ILIKE ? OR address ILIKE ? OR city ILIKE ?", term, term, term)
		}

		if len(f.PropertyTypes) > 0 {
			q = q.Where("property_type IN ?", f.PropertyTypes)
		}

		switch f.Purpose {
		case filter.PurposeRent:
			q = q.Where("status IN ?", []model.PropertyStatus{
				model.PropertyStatusForRent, model.PropertyStatusRented,
			})
		case filter.PurposeSale:
			q = q.Where("status IN ?", []model.PropertyStatus{
				model.PropertyStatusForSale, model.PropertyStatusSold,
			})
		}

		if f.MinPrice != nil {
			q = q.Where("price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			q = q.Where("price <= ?", *f.MaxPrice)
		}

		if len(f.Bedrooms) > 0 {
			q = q.Where("bedrooms IN ?", f.Bedrooms)
		}
		if len(f.Bathrooms) > 0 {
			q = q.Where("bathrooms IN ?", f.Bathrooms)
		}

		if f.MinArea != nil {
			q = q.Where("area >= ?", *f.MinArea)
		}
		if f.MaxArea != nil {
			q = q.Where("area <= ?", *f.MaxArea)
		}

		if len(f.Cities) > 0 {
			q = q.Where("city IN ?", f.Cities)
		}
		if len(f.Statuses) > 0 {
			q = q.Where("status IN ?", f.Statuses)
		}

		if f.IsFeatured != nil {
			q = q.Where("is_featured = ?", *f.IsFeatured)
		}
		if f.UserID != "" {
			q = q.Where("user_id = ?", f.UserID)
		}

		if f.FavoritesOnly && f.FavoritesUserID != "" {
			q = q.Where("id IN ?", f.FavoriteIDs)
		}

		return q
	}
}

// orderClause is safe to interpolate: SortBy and SortOrder were checked
// against the allowlist by Params.Validate.
func orderClause(f filter.Params) string {
	return fmt.Sprintf("%s %s", f.SortBy, strings.ToUpper(f.SortOrder))
}
