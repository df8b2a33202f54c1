package main

import (
	"log"
	"os"

	"github.com/fabtrack/fabtrack-backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Standalone bootstrap: creates the first admin account directly
// against the database, for deployments that do not want the seeded
// default credentials.
func main() {
	dsn := os.Getenv("DB_DSN")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Migrate schema if not exists
	if err := db.AutoMigrate(&models.UserModel{}); err != nil {
		log.Fatalf("failed to migrate user model: %v", err)
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	var user models.UserModel
	result := db.Where("email = ?", email).First(&user)
	if result.Error == nil {
		log.Printf("Admin user %s already exists", email)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := models.UserModel{
		Name:     "Fabtrack Admin",
		Email:    email,
		Role:     models.RoleAdmin,
		Password: string(hashedPassword),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}
	log.Printf("Admin user %s created", email)
}
