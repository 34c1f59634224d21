package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"

	"tourly/internal/bookings"
	"tourly/internal/contacts"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&bookings.Booking{},
		&contacts.Contact{},
	); err != nil {
		return err
	}
	return MigrateConstraints(db)
}

// MigrateMongo creates the indexes the list and filter queries rely on
func MigrateMongo(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		bookings.CollectionName: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "date", Value: 1}}},
		},
		contacts.CollectionName: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models, options.CreateIndexes()); err != nil {
			return err
		}
	}
	return nil
}
