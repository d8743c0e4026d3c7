package seed

import (
	"log"

	"gorm.io/gorm"

	"kejani_backend/internal/model"
	"kejani_backend/pkg/sample"
)

// SeedSampleProperties inserts the demo listings and their owner
// profile. Existing rows are left untouched so re-running is safe.
func SeedSampleProperties(db *gorm.DB) {
	owner := "Kejani Demo"
	profile := model.Profile{UserID: sample.DemoOwnerID, FullName: &owner}
	if err := db.FirstOrCreate(&profile, model.Profile{UserID: sample.DemoOwnerID}).Error; err != nil {
		log.Printf("Error creating demo profile: %v", err)
	}

	for _, property := range sample.Properties() {
		result := db.FirstOrCreate(&property, model.Property{ID: property.ID})
		if result.Error != nil {
			log.Printf("Error creating sample property %s: %v", property.Title, result.Error)
		}
	}

	log.Println("Sample properties seeded successfully!")
}
