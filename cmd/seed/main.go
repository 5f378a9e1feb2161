package main

import (
	"log"
	"os"

	"tenderdesk-be/internal/model"
	"tenderdesk-be/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	SeedNotificationTypes(db)
	seedAdmin(db)

	log.Println("✅ Seeding completed")
}

// seedAdmin creates the bootstrap admin account when none exists yet.
func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&model.Employee{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		log.Println("Admin account already present, skipping")
		return
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		log.Println("Warn: SEED_ADMIN_PASSWORD not set, using the default")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash admin password: %v", err)
	}

	admin := model.Employee{
		Name:         "Administrator",
		Email:        "admin@tenderdesk.local",
		Role:         "admin",
		PasswordHash: string(hash),
		Active:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error: Failed to seed admin account: %v", err)
	}
	log.Printf("Seeded admin account: %s", admin.Email)
}
