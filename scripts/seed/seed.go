package main

import (
	"lingo/config"
	"lingo/database"
	"lingo/models"
	"log"

	authController "lingo/controllers/auth"

	"golang.org/x/crypto/bcrypt"
)

// Seeds an admin account and a starter section tree for a fresh deployment.
// Run once: go run ./scripts/seed
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	// Admin account
	var admin models.User
	if err := db.Where("email = ?", "admin@lingo.local").First(&admin).Error; err != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), config.AppConfig.SaltRound)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		admin = models.User{
			Name:            "Admin",
			Email:           "admin@lingo.local",
			Role:            "ADMIN",
			Password:        string(hashed),
			IsEmailVerified: true,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		if err := authController.SeedPermissions(db, admin.Role, admin.ID); err != nil {
			log.Fatalf("Failed to seed admin permissions: %v", err)
		}
		log.Println("Admin user created: admin@lingo.local")
	} else {
		log.Println("Admin user already exists, skipping")
	}

	// Starter section tree
	var count int64
	db.Model(&models.Section{}).Count(&count)
	if count > 0 {
		log.Println("Sections already exist, skipping section seed")
		return
	}

	grammar := models.Section{Name: "Grammar", OrderIndex: 0, IsActive: true}
	vocabulary := models.Section{Name: "Vocabulary", OrderIndex: 1, IsActive: true}
	if err := db.Create(&grammar).Error; err != nil {
		log.Fatalf("Failed to seed sections: %v", err)
	}
	if err := db.Create(&vocabulary).Error; err != nil {
		log.Fatalf("Failed to seed sections: %v", err)
	}

	children := []models.Section{
		{Name: "Tenses", ParentID: &grammar.ID, OrderIndex: 0, IsActive: true},
		{Name: "Articles", ParentID: &grammar.ID, OrderIndex: 1, IsActive: true},
		{Name: "Prepositions", ParentID: &grammar.ID, OrderIndex: 2, IsActive: true},
		{Name: "Food & Drink", ParentID: &vocabulary.ID, OrderIndex: 0, IsActive: true},
		{Name: "Travel", ParentID: &vocabulary.ID, OrderIndex: 1, IsActive: true},
	}
	if err := db.Create(&children).Error; err != nil {
		log.Fatalf("Failed to seed sections: %v", err)
	}

	log.Println("Seeded starter section tree")
}
