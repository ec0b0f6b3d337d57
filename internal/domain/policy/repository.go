package policy

import (
	"context"
	"errors"
)

// SettingsRepository loads the singleton organization settings.
type SettingsRepository interface {
	// Get returns ErrSettingsNotFound when nothing has been saved yet.
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, settings Settings) error
}

// Load returns the saved settings or DefaultSettings when none exist.
func Load(ctx context.Context, repo SettingsRepository) (Settings, error) {
	settings, err := repo.Get(ctx)
	if errors.Is(err, ErrSettingsNotFound) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, err
	}
	return settings, nil
}
