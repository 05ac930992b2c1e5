package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"employee-attendance/models"
)

type SettingsRepository interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, s *models.Settings) error
}

type settingsRepository struct {
	collection      *mongo.Collection
	defaultTimezone string
}

// NewSettingsRepository stores the single organization settings document.
// Until one is saved, GetSettings returns the defaults in defaultTimezone.
func NewSettingsRepository(collection *mongo.Collection, defaultTimezone string) SettingsRepository {
	return &settingsRepository{collection: collection, defaultTimezone: defaultTimezone}
}

func (r *settingsRepository) GetSettings(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	err := r.collection.FindOne(ctx, bson.M{"_id": models.SettingsID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			def := models.DefaultSettings(r.defaultTimezone)
			return &def, nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &s, nil
}

func (r *settingsRepository) SaveSettings(ctx context.Context, s *models.Settings) error {
	s.ID = models.SettingsID
	s.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": models.SettingsID}, s, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
