// Package filter decides whether a property satisfies a set of listing
// criteria. The same semantics are translated into remote predicates by
// the repository's query builder; the two must stay equivalent so that
// the in-memory sample mode and the database-backed listing agree.
package filter

import (
	"sort"
	"strings"

	"kejani_backend/internal/model"
	"kejani_backend/pkg/pagination"
)

// Matches reports whether p satisfies every supplied criterion in f.
// Absent or empty criteria are vacuously true. Soft-deleted rows never
// match, mirroring the implicit is_active constraint on the remote side.
func Matches(p model.Property, f Params) bool {
	if !p.IsActive {
		return false
	}

	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Address), term) &&
			!strings.Contains(strings.ToLower(p.City), term) {
			return false
		}
	}

	if len(f.PropertyTypes) > 0 && !containsType(f.PropertyTypes, p.PropertyType) {
		return false
	}

	switch f.Purpose {
	case PurposeRent:
		if !p.Status.Rentable() {
			return false
		}
	case PurposeSale:
		if p.Status.Rentable() {
			return false
		}
	}

	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}

	if len(f.Bedrooms) > 0 && (p.Bedrooms == nil || !containsInt(f.Bedrooms, *p.Bedrooms)) {
		return false
	}
	if len(f.Bathrooms) > 0 && (p.Bathrooms == nil || !containsInt(f.Bathrooms, *p.Bathrooms)) {
		return false
	}

	if f.MinArea != nil && p.Area < *f.MinArea {
		return false
	}
	if f.MaxArea != nil && p.Area > *f.MaxArea {
		return false
	}

	if len(f.Cities) > 0 && !containsString(f.Cities, p.City) {
		return false
	}

	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, p.Status) {
		return false
	}

	if f.IsFeatured != nil && p.IsFeatured != *f.IsFeatured {
		return false
	}

	if f.UserID != "" && p.UserID != f.UserID {
		return false
	}

	if f.FavoritesOnly && f.FavoritesUserID != "" && !containsString(f.FavoriteIDs, p.ID) {
		return false
	}

	return true
}

// Apply filters, sorts and windows an in-memory property set. The
// returned total counts all matches, not just the page.
func Apply(list []model.Property, f Params) (page []model.Property, total int) {
	f.Normalize()

	matched := make([]model.Property, 0, len(list))
	for _, p := range list {
		if Matches(p, f) {
			matched = append(matched, p)
		}
	}

	Sort(matched, f.SortBy, f.SortOrder)

	from, to := pagination.Window(f.Page, f.Limit)
	if from >= len(matched) {
		return []model.Property{}, len(matched)
	}
	if to >= len(matched) {
		to = len(matched) - 1
	}
	return matched[from : to+1], len(matched)
}

// Sort orders properties by one of the allowlisted sort columns.
func Sort(list []model.Property, sortBy, order string) {
	desc := order == SortDesc
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if desc {
			a, b = b, a
		}
		switch sortBy {
		case "price":
			return a.Price < b.Price
		case "area":
			return a.Area < b.Area
		case "title":
			return a.Title < b.Title
		case "city":
			return a.City < b.City
		case "bedrooms":
			return derefInt(a.Bedrooms) < derefInt(b.Bedrooms)
		case "bathrooms":
			return derefInt(a.Bathrooms) < derefInt(b.Bathrooms)
		case "updated_at":
			return a.UpdatedAt.Before(b.UpdatedAt)
		default: // created_at
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})
}

func containsType(set []model.PropertyType, v model.PropertyType) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsStatus(set []model.PropertyStatus, v model.PropertyStatus) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
