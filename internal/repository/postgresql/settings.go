package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) policy.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements policy.SettingsRepository.
func (r *settingsRepository) Get(ctx context.Context) (policy.Settings, error) {
	q := GetQuerier(ctx, r.db)

	var raw []byte
	err := q.QueryRow(ctx, `SELECT settings FROM organization_settings WHERE id = 1`).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.Settings{}, policy.ErrSettingsNotFound
		}
		return policy.Settings{}, fmt.Errorf("failed to get organization settings: %w", err)
	}

	var settings policy.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return policy.Settings{}, fmt.Errorf("failed to decode organization settings: %w", err)
	}
	return settings, nil
}

// Save implements policy.SettingsRepository.
func (r *settingsRepository) Save(ctx context.Context, settings policy.Settings) error {
	q := GetQuerier(ctx, r.db)

	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode organization settings: %w", err)
	}

	query := `
		INSERT INTO organization_settings (id, settings, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET settings = EXCLUDED.settings, updated_at = NOW()
	`
	if _, err := q.Exec(ctx, query, raw); err != nil {
		return fmt.Errorf("failed to save organization settings: %w", err)
	}
	return nil
}
