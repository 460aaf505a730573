package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/discoverpt/discover-portugal-backend/config"
)

// Connect opens the MongoDB database described by cfg. A missing or
// unreachable DATABASE_URL is not fatal: Connect returns nil and the
// server keeps running with store-backed endpoints degraded.
func Connect(cfg *config.Config) *mongo.Database {
	if cfg.DatabaseURL == "" {
		log.Println("⚠️ DATABASE_URL not set, running without a database")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx,
		options.Client().ApplyURI(cfg.DatabaseURL),
		options.Client().SetConnectTimeout(10*time.Second),
		options.Client().SetServerSelectionTimeout(10*time.Second),
	)
	if err != nil {
		log.Printf("⚠️ MongoDB connect failed: %v (running without a database)", err)
		return nil
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Printf("⚠️ MongoDB ping failed: %v (running without a database)", err)
		return nil
	}

	log.Printf("✅ MongoDB connected, database %q", cfg.DatabaseName)
	return client.Database(cfg.DatabaseName)
}
