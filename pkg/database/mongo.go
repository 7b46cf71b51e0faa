package database

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoDatabase connects to MongoDB and returns a handle to the named database.
// Reads go to the primary so a login always observes the most recently committed
// password hash.
func NewMongoDatabase(ctx context.Context, mongoURL, dbName string) (*mongo.Database, error) {
	if mongoURL == "" {
		return nil, fmt.Errorf("mongo URL cannot be empty")
	}
	if dbName == "" {
		return nil, fmt.Errorf("mongo database name cannot be empty")
	}

	opts := options.Client().ApplyURI(mongoURL).SetReadPreference(readpref.Primary())
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Test the connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Println("Successfully connected to MongoDB.")
	return client.Database(dbName), nil
}

// CloseMongoDatabase disconnects the underlying client.
func CloseMongoDatabase(ctx context.Context, db *mongo.Database) {
	if db == nil {
		return
	}
	if err := db.Client().Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v\n", err)
		return
	}
	log.Println("MongoDB connection closed.")
}
