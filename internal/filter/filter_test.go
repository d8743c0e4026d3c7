package filter_test

import (
	"testing"
	"time"

	"kejani_backend/internal/filter"
	"kejani_backend/internal/model"
)

func pint(i int) *int           { return &i }
func pfloat(f float64) *float64 { return &f }
func pbool(b bool) *bool        { return &b }

func westlandsApartment() model.Property {
	return model.Property{
		ID:           "prop-1",
		Title:        "Modern 3-Bedroom Apartment in Westlands",
		Price:        120000,
		PropertyType: model.PropertyTypeApartment,
		Status:       model.PropertyStatusForRent,
		Bedrooms:     pint(3),
		Bathrooms:    pint(2),
		Area:         120,
		Address:      "Waiyaki Way, Westlands",
		City:         "Nairobi",
		UserID:       "owner-1",
		IsActive:     true,
	}
}

func TestMatches_TypeAndPriceRange(t *testing.T) {
	p := westlandsApartment()

	f := filter.Params{
		PropertyTypes: []model.PropertyType{model.PropertyTypeApartment},
		MinPrice:      pfloat(100000),
		MaxPrice:      pfloat(150000),
	}
	if !filter.Matches(p, f) {
		t.Fatalf("apartment at 120000 should match type+range filter")
	}

	f.MinPrice = pfloat(130000)
	if filter.Matches(p, f) {
		t.Fatalf("min price 130000 should exclude a 120000 listing")
	}
}

func TestMatches_CityMembership(t *testing.T) {
	p := westlandsApartment()

	if !filter.Matches(p, filter.Params{Cities: []string{"Nairobi", "Kisumu"}}) {
		t.Fatalf("Nairobi listing should match city set containing Nairobi")
	}
	if filter.Matches(p, filter.Params{Cities: []string{"Mombasa"}}) {
		t.Fatalf("Nairobi listing should not match city set {Mombasa}")
	}
}

func TestMatches_BoundsAreInclusive(t *testing.T) {
	p := westlandsApartment()

	f := filter.Params{MinPrice: pfloat(120000), MaxPrice: pfloat(120000)}
	if !filter.Matches(p, f) {
		t.Fatalf("price exactly on both bounds should match")
	}

	f = filter.Params{MinArea: pfloat(120), MaxArea: pfloat(120)}
	if !filter.Matches(p, f) {
		t.Fatalf("area exactly on both bounds should match")
	}
}

func TestMatches_SearchCoversTitleAddressCity(t *testing.T) {
	p := westlandsApartment()

	for _, term := range []string{"westlands", "WAIYAKI", "nairobi", "3-bedroom"} {
		if !filter.Matches(p, filter.Params{Search: term}) {
			t.Fatalf("search %q should match", term)
		}
	}
	if filter.Matches(p, filter.Params{Search: "mombasa"}) {
		t.Fatalf("search for absent term should not match")
	}
}

func TestMatches_PurposePartitionsStatuses(t *testing.T) {
	cases := []struct {
		status model.PropertyStatus
		rent   bool
	}{
		{model.PropertyStatusForRent, true},
		{model.PropertyStatusRented, true},
		{model.PropertyStatusForSale, false},
		{model.PropertyStatusSold, false},
	}

	for _, tc := range cases {
		p := westlandsApartment()
		p.Status = tc.status

		if got := filter.Matches(p, filter.Params{Purpose: filter.PurposeRent}); got != tc.rent {
			t.Errorf("status %s: purpose=rent matched=%v, want %v", tc.status, got, tc.rent)
		}
		if got := filter.Matches(p, filter.Params{Purpose: filter.PurposeSale}); got != !tc.rent {
			t.Errorf("status %s: purpose=sale matched=%v, want %v", tc.status, got, !tc.rent)
		}
	}
}

func TestMatches_InactiveNeverMatches(t *testing.T) {
	p := westlandsApartment()
	p.IsActive = false

	if filter.Matches(p, filter.Params{}) {
		t.Fatalf("soft-deleted listing should never match")
	}
}

func TestMatches_NilBedroomsExcludedByBedroomFilter(t *testing.T) {
	p := westlandsApartment()
	p.Bedrooms = nil

	if filter.Matches(p, filter.Params{Bedrooms: []int{3}}) {
		t.Fatalf("listing without bedroom count should not match a bedroom filter")
	}
	if !filter.Matches(p, filter.Params{}) {
		t.Fatalf("listing without bedroom count should match when no bedroom filter is set")
	}
}

func TestMatches_FeaturedAndOwner(t *testing.T) {
	p := westlandsApartment()

	if filter.Matches(p, filter.Params{IsFeatured: pbool(true)}) {
		t.Fatalf("non-featured listing should not match featured=true")
	}
	if !filter.Matches(p, filter.Params{IsFeatured: pbool(false)}) {
		t.Fatalf("non-featured listing should match featured=false")
	}
	if !filter.Matches(p, filter.Params{UserID: "owner-1"}) {
		t.Fatalf("owner filter should match the owner")
	}
	if filter.Matches(p, filter.Params{UserID: "owner-2"}) {
		t.Fatalf("owner filter should exclude other owners")
	}
}

func TestMatches_FavoritesRequireUser(t *testing.T) {
	p := westlandsApartment()

	// Without an identity the favorites criterion is vacuous.
	if !filter.Matches(p, filter.Params{FavoritesOnly: true}) {
		t.Fatalf("favorites_only without a user should not exclude anything")
	}

	f := filter.Params{FavoritesOnly: true, FavoritesUserID: "user-2", FavoriteIDs: []string{"prop-2"}}
	if filter.Matches(p, f) {
		t.Fatalf("listing outside the favorite set should not match")
	}
	f.FavoriteIDs = []string{"prop-1", "prop-2"}
	if !filter.Matches(p, f) {
		t.Fatalf("favorited listing should match")
	}
}

func TestMatches_FavoritesSpanOtherOwners(t *testing.T) {
	// prop-1 is owned by owner-1; user-2 has favorited it. The favorites
	// criterion must not also require user-2 to be the owner.
	p := westlandsApartment()

	f := filter.Params{
		FavoritesOnly:   true,
		FavoritesUserID: "user-2",
		FavoriteIDs:     []string{"prop-1"},
	}
	if !filter.Matches(p, f) {
		t.Fatalf("favorited listing owned by someone else should match")
	}

	// The owner filter stays an independent criterion on top.
	f.UserID = "owner-1"
	if !filter.Matches(p, f) {
		t.Fatalf("favorites + matching owner filter should match")
	}
	f.UserID = "user-2"
	if filter.Matches(p, f) {
		t.Fatalf("owner filter should still exclude listings the user does not own")
	}
}

func testSet() []model.Property {
	base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	mk := func(id string, price float64, offset int) model.Property {
		p := westlandsApartment()
		p.ID = id
		p.Price = price
		p.CreatedAt = base.Add(time.Duration(offset) * time.Hour)
		return p
	}
	return []model.Property{
		mk("a", 300, 0),
		mk("b", 100, 1),
		mk("c", 200, 2),
		mk("d", 400, 3),
		mk("e", 500, 4),
	}
}

func TestApply_SortsAndWindows(t *testing.T) {
	f := filter.Params{SortBy: "price", SortOrder: filter.SortAsc, Page: 1, Limit: 2}

	page, total := filter.Apply(testSet(), f)
	if total != 5 {
		t.Fatalf("total = %d, want 5", total)
	}
	if len(page) != 2 || page[0].ID != "b" || page[1].ID != "c" {
		t.Fatalf("page 1 = %v", ids(page))
	}

	f.Page = 3
	page, _ = filter.Apply(testSet(), f)
	if len(page) != 1 || page[0].ID != "e" {
		t.Fatalf("final partial page = %v", ids(page))
	}
}

func TestApply_PageBeyondEndIsEmpty(t *testing.T) {
	page, total := filter.Apply(testSet(), filter.Params{Page: 4, Limit: 2})
	if total != 5 {
		t.Fatalf("total = %d, want 5", total)
	}
	if len(page) != 0 {
		t.Fatalf("page beyond the end should be empty, got %v", ids(page))
	}
}

func TestApply_DefaultsToNewestFirst(t *testing.T) {
	page, _ := filter.Apply(testSet(), filter.Params{})
	if len(page) != 5 || page[0].ID != "e" || page[4].ID != "a" {
		t.Fatalf("default order should be created_at desc, got %v", ids(page))
	}
}

func TestSort_DescendingPrice(t *testing.T) {
	list := testSet()
	filter.Sort(list, "price", filter.SortDesc)
	if list[0].ID != "e" || list[4].ID != "b" {
		t.Fatalf("descending price order = %v", ids(list))
	}
}

func ids(list []model.Property) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.ID
	}
	return out
}
