package database

import (
	"context"
	"log"

	"agri-program-api-server/config"
	"agri-program-api-server/internal/auth"
	"agri-program-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedAdmin inserts a default admin credential when the users collection
// has none. Skipped when no seed password is configured.
func SeedAdmin(db *mongo.Database, cfg config.Config) error {
	if cfg.Seed.AdminPassword == "" {
		log.Println("No seed admin password configured. Seeding skipped.")
		return nil
	}

	userCollection := db.Collection("users")

	count, err := userCollection.CountDocuments(context.Background(), bson.M{"username": "admin"})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin credential already exists. Seeding skipped.")
		return nil
	}

	log.Println("Admin credential not found. Seeding...")
	hashedPassword, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.Credential{
		Username: "admin",
		Password: hashedPassword,
		Role:     "admin",
		Name:     "Administrator",
	}

	_, err = userCollection.InsertOne(context.Background(), admin)
	if err != nil {
		return err
	}

	log.Println("Admin credential seeded successfully.")
	return nil
}
