package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OpenDB initializes and returns the MongoDB client for the storefront.
// It reads the connection URI from the environment (or a localhost
// fallback for local development).
func OpenDB() (*mongo.Client, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
		log.Println("MONGODB_URI not set, using default:", uri)
	}

	return OpenDBWithURI(uri)
}

// OpenDBWithURI creates, configures and pings a MongoDB client for any
// provided connection URI.
func OpenDBWithURI(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(25).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping before use so a bad URI fails at startup, not on first request.
	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, err
	}

	log.Println("Database connection established successfully")
	return client, nil
}

// Name returns the database name for the storefront collections.
func Name() string {
	if name := os.Getenv("MONGODB_DATABASE"); name != "" {
		return name
	}
	return "pixel"
}
