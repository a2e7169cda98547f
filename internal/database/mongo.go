package database

import (
	"context"
	"log"
	"time"

	"agri-program-api-server/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens the mongo client and verifies the connection. The caller
// owns the returned client and is responsible for Disconnect.
func Connect(cfg config.Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, err
	}

	log.Printf("Connected to MongoDB database %q", cfg.Mongo.DBName)
	return client, client.Database(cfg.Mongo.DBName), nil
}
