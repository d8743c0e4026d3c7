package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"kejani_backend/internal/filter"
	"kejani_backend/internal/model"
)

// parseFilterParams builds listing filters from query params. Set-valued
// filters take comma-separated values, e.g. ?type=apartment,villa.
func parseFilterParams(c *fiber.Ctx) filter.Params {
	f := filter.Params{
		Search:        c.Query("search"),
		Purpose:       c.Query("purpose"),
		UserID:        c.Query("user_id"),
		FavoritesOnly: c.QueryBool("favorites_only", false),
		Page:          c.QueryInt("page", 0),
		Limit:         c.QueryInt("limit", 0),
		SortBy:        c.Query("sort_by"),
		SortOrder:     c.Query("sort_order"),
	}

	for _, v := range splitQuery(c.Query("type")) {
		f.PropertyTypes = append(f.PropertyTypes, model.PropertyType(v))
	}
	for _, v := range splitQuery(c.Query("status")) {
		f.Statuses = append(f.Statuses, model.PropertyStatus(v))
	}
	f.Cities = splitQuery(c.Query("city"))
	f.Bedrooms = splitQueryInts(c.Query("bedrooms"))
	f.Bathrooms = splitQueryInts(c.Query("bathrooms"))

	f.MinPrice = queryFloat(c, "min_price")
	f.MaxPrice = queryFloat(c, "max_price")
	f.MinArea = queryFloat(c, "min_area")
	f.MaxArea = queryFloat(c, "max_area")

	if c.Query("featured") != "" {
		featured := c.QueryBool("featured")
		f.IsFeatured = &featured
	}

	return f
}

func splitQuery(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func splitQueryInts(raw string) []int {
	var out []int
	for _, part := range splitQuery(raw) {
		if n, err := strconv.Atoi(part); err == nil {
			out = append(out, n)
		}
	}
	return out
}

func queryFloat(c *fiber.Ctx, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
