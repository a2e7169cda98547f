package main

import (
	"context"
	"log"

	"agri-program-api-server/config"
	"agri-program-api-server/internal/api/routes"
	"agri-program-api-server/internal/database"
	"agri-program-api-server/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	client, db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin credential: %v", err)
	}

	router := routes.SetupRouter(store.NewMongoStore(db))

	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
