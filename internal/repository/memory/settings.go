package memory

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/policy"
)

type SettingsRepository struct {
	store *Store
}

// Get implements policy.SettingsRepository.
func (r *SettingsRepository) Get(_ context.Context) (policy.Settings, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.settings == nil {
		return policy.Settings{}, policy.ErrSettingsNotFound
	}
	return cloneSettings(*r.store.settings), nil
}

// Save implements policy.SettingsRepository.
func (r *SettingsRepository) Save(_ context.Context, settings policy.Settings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s := cloneSettings(settings)
	r.store.settings = &s
	return nil
}

// cloneSettings keeps callers from mutating the stored snapshot through shared slices or pointers.
func cloneSettings(s policy.Settings) policy.Settings {
	s.WeekendPolicy = append([]string(nil), s.WeekendPolicy...)
	if s.OfficeLocation != nil {
		office := *s.OfficeLocation
		if office.Latitude != nil {
			lat := *office.Latitude
			office.Latitude = &lat
		}
		if office.Longitude != nil {
			lng := *office.Longitude
			office.Longitude = &lng
		}
		s.OfficeLocation = &office
	}
	return s
}
