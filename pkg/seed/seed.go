package seed

import (
	"log"

	"gorm.io/gorm"

	"premiumartisan_backend/internal/model"
)

// SeedDemoLeads inserts a few representative leads so the admin view has
// something to show on a fresh environment. Guarded by the caller; never run
// in production.
func SeedDemoLeads(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Lead{}).Count(&count).Error; err != nil {
		log.Printf("Could not count leads before seeding: %v", err)
		return
	}
	if count > 0 {
		log.Println("Leads table not empty, skipping demo seed")
		return
	}

	surface := "85"
	location := "Dijon — 21, Côte-d'Or, Bourgogne-Franche-Comté"
	description := "Rafraîchir le salon et deux chambres avant location."
	photos := "salon.jpg | chambre1.jpg"

	leads := []model.Lead{
		{
			Category: "Peinture : intérieure, rénovation",
			Name:     "Jean Dupont",
			Phone:    "0612345678",
			Postal:   "21000",
			Surface:  &surface,
			Location: &location,
		},
		{
			Category:    "Peinture : extérieure",
			Name:        "Marie Petit",
			Phone:       "0698765432",
			Postal:      "21200",
			Description: &description,
			PhotoName:   &photos,
		},
		{
			Category: "Peinture",
			Name:     "Luc Moreau",
			Phone:    "0655443322",
			Postal:   "21300",
		},
	}

	for _, lead := range leads {
		if err := db.Create(&lead).Error; err != nil {
			log.Printf("Error seeding lead for %s: %v", lead.Name, err)
		}
	}

	log.Println("Demo leads seeded successfully!")
}
