package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB establishes the MongoDB connection from DATABASE_URL and
// DATABASE_NAME. It returns nil when no database is configured or the
// store is unreachable; the server keeps running without persistence.
func ConnectDB() *mongo.Database {
	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		log.Println("DATABASE_URL not set, running without persistence")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Printf("Failed to connect to MongoDB: %v", err)
		return nil
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("MongoDB unreachable: %v", err)
		return nil
	}

	dbName := os.Getenv("DATABASE_NAME")
	if dbName == "" {
		dbName = "asylen"
	}

	log.Printf("Connected to MongoDB database %q", dbName)
	return client.Database(dbName)
}
