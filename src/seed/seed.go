package seed

import (
	"log"
	"os"

	"github.com/fabtrack/fabtrack-backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the first admin account and a couple of demo catalog
// entries. Safe to run on every startup.
func Seed(db *gorm.DB) {
	// First admin: the notification gateway needs an admin recipient.
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@fabtrack.local"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "fabtrack-admin"
	}

	var admin models.UserModel
	result := db.Where("email = ?", adminEmail).First(&admin)
	if result.Error == nil {
		log.Printf("Admin user %s already exists\n", adminEmail)
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)

		newAdmin := models.UserModel{
			Name:     "Fabtrack Admin",
			Email:    adminEmail,
			Role:     models.RoleAdmin,
			Password: string(hashedPassword),
		}
		if err := db.Create(&newAdmin).Error; err != nil {
			log.Printf("Failed to create admin user: %v\n", err)
		} else {
			log.Printf("Admin user %s created\n", adminEmail)
		}
	}

	// Demo equipment so a fresh install has something to borrow
	names := []string{"3D Printer", "Soldering Station", "Oscilloscope"}
	createdCount := 0
	for _, name := range names {
		var existing models.EquipmentModel
		checkResult := db.Where("name = ?", name).First(&existing)
		if checkResult.Error == nil {
			continue
		}
		equipment := models.EquipmentModel{Name: name}
		if err := db.Create(&equipment).Error; err != nil {
			log.Printf("Failed to create equipment '%s': %v\n", name, err)
		} else {
			createdCount++
		}
	}
	if createdCount > 0 {
		log.Printf("Finished creating %d demo equipment entries\n", createdCount)
	}
}
