package seeder

import (
	"context"

	"employee-attendance/models"
	"employee-attendance/pkg/logging"
)

type SettingsStore interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, s *models.Settings) error
}

// SeedSettings persists the default organization settings when none have
// been saved yet. A stored document always has UpdatedAt set.
func SeedSettings(ctx context.Context, store SettingsStore) (bool, error) {
	current, err := store.GetSettings(ctx)
	if err != nil {
		return false, err
	}
	if !current.UpdatedAt.IsZero() {
		return false, nil
	}
	if err := store.SaveSettings(ctx, current); err != nil {
		return false, err
	}
	logging.Info().Str("timezone", current.Timezone).Msg("default settings stored")
	return true, nil
}
