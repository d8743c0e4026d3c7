// Package sample provides a fixed set of demo listings used when the
// service runs without real data: the seeder inserts them and the demo
// listing endpoint serves them straight from memory.
package sample

import (
	"time"

	"kejani_backend/internal/model"
)

// DemoOwnerID owns every sample listing.
const DemoOwnerID = "a0e6a372-1f3b-4c52-9d2e-6f1b8c9d0e1a"

func intp(v int) *int { return &v }

// Properties returns fresh copies of the demo listings so callers can
// mutate them freely.
func Properties() []model.Property {
	base := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)

	list := []model.Property{
		{
			ID:           "11111111-9f04-4c3a-8a6e-000000000001",
			Title:        "Modern 3-Bedroom Apartment in Westlands",
			Price:        120000,
			PropertyType: model.PropertyTypeApartment,
			Status:       model.PropertyStatusForRent,
			Bedrooms:     intp(3),
			Bathrooms:    intp(2),
			Area:         120,
			Address:      "Waiyaki Way, Westlands",
			City:         "Nairobi",
			IsFeatured:   true,
			Images: []model.PropertyImage{{
				URL:       "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=400&h=300&fit=crop",
				IsPrimary: true,
			}},
		},
		{
			ID:           "11111111-9f04-4c3a-8a6e-000000000002",
			Title:        "Luxury Villa with Ocean View",
			Price:        25000000,
			PropertyType: model.PropertyTypeVilla,
			Status:       model.PropertyStatusForSale,
			Bedrooms:     intp(5),
			Bathrooms:    intp(4),
			Area:         400,
			Address:      "Links Road, Nyali",
			City:         "Mombasa",
			IsFeatured:   true,
			Images: []model.PropertyImage{{
				URL:       "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=400&h=300&fit=crop",
				IsPrimary: true,
			}},
		},
		{
			ID:           "11111111-9f04-4c3a-8a6e-000000000003",
			Title:        "Spacious Family Home in Karen",
			Price:        180000,
			PropertyType: model.PropertyTypeHouse,
			Status:       model.PropertyStatusForRent,
			Bedrooms:     intp(4),
			Bathrooms:    intp(3),
			Area:         250,
			Address:      "Karen Road, Karen",
			City:         "Nairobi",
			Images: []model.PropertyImage{{
				URL:       "https://images.unsplash.com/photo-1605276374104-dee2a0ed3cd6?w=400&h=300&fit=crop",
				IsPrimary: true,
			}},
		},
		{
			ID:           "11111111-9f04-4c3a-8a6e-000000000004",
			Title:        "Commercial Office Space",
			Price:        300000,
			PropertyType: model.PropertyTypeCommercial,
			Status:       model.PropertyStatusForRent,
			Area:         200,
			Address:      "Kenyatta Avenue, CBD",
			City:         "Nairobi",
			Images: []model.PropertyImage{{
				URL:       "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?w=400&h=300&fit=crop",
				IsPrimary: true,
			}},
		},
		{
			ID:           "11111111-9f04-4c3a-8a6e-000000000005",
			Title:        "Beachfront Apartment",
			Price:        8500000,
			PropertyType: model.PropertyTypeApartment,
			Status:       model.PropertyStatusForSale,
			Bedrooms:     intp(2),
			Bathrooms:    intp(2),
			Area:         95,
			Address:      "Bofa Road, Kilifi",
			City:         "Kilifi",
			Images: []model.PropertyImage{{
				URL:       "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=400&h=300&fit=crop",
				IsPrimary: true,
			}},
		},
		{
			ID:           "11111111-9f04-4c3a-8a6e-000000000006",
			Title:        "Student Housing near University",
			Price:        35000,
			PropertyType: model.PropertyTypeApartment,
			Status:       model.PropertyStatusForRent,
			Bedrooms:     intp(1),
			Bathrooms:    intp(1),
			Area:         45,
			Address:      "Thogoto Road, Kikuyu",
			City:         "Kiambu",
			Images: []model.PropertyImage{{
				URL:       "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=400&h=300&fit=crop",
				IsPrimary: true,
			}},
		},
	}

	for i := range list {
		list[i].UserID = DemoOwnerID
		list[i].AreaUnit = "sqm"
		list[i].Country = "Kenya"
		list[i].IsActive = true
		list[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
		list[i].UpdatedAt = list[i].CreatedAt
	}
	return list
}
