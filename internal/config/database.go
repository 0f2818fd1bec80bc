package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"lendshare/internal/adapters/persistence/repositories"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// mongoClient is the global client, set only when the mongo backend is
// selected. Held for the process lifetime.
var mongoClient *mongo.Client

const connectTimeout = 5 * time.Second

// ConnectStorage selects the storage backend. MONGO_URI set and
// reachable means MongoDB; otherwise the in-memory backend is used.
// An unreachable MongoDB is a warning, not a startup failure.
func ConnectStorage(cfg *Config) (*repositories.Store, error) {
	if cfg.Storage.MongoURI == "" {
		log.Println("MONGO_URI not set — using in-memory storage")
		return repositories.NewMemoryStore(), nil
	}

	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.Storage.MongoURI).
		SetServerSelectionTimeout(connectTimeout))
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		err = client.Ping(ctx, readpref.Primary())
	}
	if err != nil {
		log.Printf("⚠️ Could not connect to MongoDB (falling back to memory): %v", err)
		return repositories.NewMemoryStore(), nil
	}

	mongoClient = client
	log.Printf("✅ Storage connected successfully [mongo: %s]", cfg.Storage.Database)
	return repositories.NewMongoStore(client.Database(cfg.Storage.Database)), nil
}

// CloseStorage disconnects the mongo client, if one was established
func CloseStorage() error {
	if mongoClient == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return mongoClient.Disconnect(ctx)
}

// HealthCheck checks if the selected backend is healthy. The in-memory
// backend is always healthy.
func HealthCheck() error {
	if mongoClient == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}
