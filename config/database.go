package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"employee-attendance/models"
	"employee-attendance/pkg/logging"
)

const (
	UserCollection       = "users"
	AttendanceCollection = "attendances"
	HolidayCollection    = "holidays"
	SettingsCollection   = "settings"
	OfficeCodeCollection = "office_codes"
	ApprovalCollection   = "approval_requests"
)

// MongoConnect connects to uri and pings the primary.
func MongoConnect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logging.Info().Msg("connected to MongoDB")
	return client, nil
}

func DisconnectDB(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logging.Error().Err(err).Msg("error disconnecting from MongoDB")
		return
	}
	logging.Info().Msg("disconnected from MongoDB")
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// (user_id, date) index is what makes a second record for the same employee
// and day impossible.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	// One open approval request per employee, date and type.
	onePending := options.Index().SetUnique(true).
		SetPartialFilterExpression(bson.M{"status": models.ApprovalPending})

	indexes := map[string][]mongo.IndexModel{
		UserCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		AttendanceCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "date", Value: 1}}},
		},
		HolidayCollection: {
			{Keys: bson.D{{Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ApprovalCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}, {Key: "type", Value: 1}}, Options: onePending},
		},
		OfficeCodeCollection: {
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(24 * 60 * 60)},
		},
	}

	for _, name := range []string{UserCollection, AttendanceCollection, HolidayCollection, ApprovalCollection, OfficeCodeCollection} {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes[name]); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
