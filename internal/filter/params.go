package filter

import (
	"errors"
	"fmt"

	"kejani_backend/internal/model"
)

// Purpose partitions listings into the rental and sales markets. An
// empty purpose matches both.
const (
	PurposeRent = "rent"
	PurposeSale = "sale"
)

const (
	DefaultPage   = 1
	DefaultLimit  = 10
	DefaultSortBy = "created_at"

	SortAsc  = "asc"
	SortDesc = "desc"
)

var ErrValidation = errors.New("invalid filter params")

// sortColumns is the allowlist of sortable fields. Anything else is
// rejected rather than interpolated into the query.
var sortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"price":      true,
	"area":       true,
	"title":      true,
	"city":       true,
	"bedrooms":   true,
	"bathrooms":  true,
}

// Params is the transient query specification for property listings.
// Absent or empty criteria do not constrain the result.
type Params struct {
	Search        string
	PropertyTypes []model.PropertyType
	Purpose       string
	MinPrice      *float64
	MaxPrice      *float64
	Bedrooms      []int
	Bathrooms     []int
	MinArea       *float64
	MaxArea       *float64
	Cities        []string
	Statuses      []model.PropertyStatus
	IsFeatured    *bool
	UserID        string
	FavoritesOnly bool

	// FavoritesUserID is the user whose favorites scope the listing
	// when FavoritesOnly is set. It is distinct from UserID, which
	// filters by listing owner; the two criteria are independent.
	FavoritesUserID string

	// FavoriteIDs is the resolved favorited-property set. The caller
	// that owns the favorites source fills it in before evaluation;
	// it is never supplied by end users directly.
	FavoriteIDs []string

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Normalize fills pagination and sort defaults for zero values.
func (f *Params) Normalize() {
	if f.Page == 0 {
		f.Page = DefaultPage
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if f.SortBy == "" {
		f.SortBy = DefaultSortBy
	}
	if f.SortOrder == "" {
		f.SortOrder = SortDesc
	}
}

// Validate rejects malformed params after Normalize has been applied.
func (f Params) Validate() error {
	if f.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1", ErrValidation)
	}
	if f.Limit < 1 {
		return fmt.Errorf("%w: limit must be > 0", ErrValidation)
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return fmt.Errorf("%w: min_price greater than max_price", ErrValidation)
	}
	if f.MinArea != nil && f.MaxArea != nil && *f.MinArea > *f.MaxArea {
		return fmt.Errorf("%w: min_area greater than max_area", ErrValidation)
	}
	switch f.Purpose {
	case "", PurposeRent, PurposeSale:
	default:
		return fmt.Errorf("%w: unknown purpose %q", ErrValidation, f.Purpose)
	}
	if !sortColumns[f.SortBy] {
		return fmt.Errorf("%w: cannot sort by %q", ErrValidation, f.SortBy)
	}
	if f.SortOrder != SortAsc && f.SortOrder != SortDesc {
		return fmt.Errorf("%w: sort order must be asc or desc", ErrValidation)
	}
	return nil
}
