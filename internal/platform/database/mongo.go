package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"house_rent/internal/platform/config"
)

const (
	AccountsCollection   = "users"
	OwnersCollection     = "property_owners"
	TenantsCollection    = "tenants"
	PropertiesCollection = "properties"
)

// Connect opens the mongo client, verifies connectivity and returns the
// application database handle together with a close function.
func Connect(cfg *config.Config) (*mongo.Database, func()) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	// Verify connection
	if err = client.Ping(ctx, nil); err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	fmt.Println("Successfully connected to MongoDB!")

	db := client.Database(cfg.MongoDB)
	closeFn := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error closing database: %v", err)
			return
		}
		fmt.Println("Database connection closed.")
	}
	return db, closeFn
}

// EnsureIndexes creates the unique email indexes the registration flows rely
// on. Safe to call on every startup; mongo treats existing indexes as a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	emailUnique := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, coll := range []string{OwnersCollection, TenantsCollection} {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, emailUnique); err != nil {
			return fmt.Errorf("creating email index on %s: %w", coll, err)
		}
	}
	return nil
}
