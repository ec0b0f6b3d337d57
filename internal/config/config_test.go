package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MemoryDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("ORG_TIMEZONE", "UTC")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.AllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_PostgresRequiresPassword(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			JWT:     JWTConfig{Secret: "secret", AccessExpiration: "1h"},
			App:     AppConfig{Timezone: "UTC"},
			Storage: StorageConfig{Driver: DriverMemory},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "sqlite" }, "STORAGE_DRIVER"},
		{"missing secret", func(c *Config) { c.JWT.Secret = "" }, "JWT_SECRET_KEY"},
		{"bad expiration", func(c *Config) { c.JWT.AccessExpiration = "soon" }, "JWT_ACCESS_EXPIRATION_TIME"},
		{"bad timezone", func(c *Config) { c.App.Timezone = "Mars/Olympus" }, "ORG_TIMEZONE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := Config{Database: DatabaseConfig{User: "u", Password: "p", Host: "db", Port: 5433, Name: "att", SSLMode: "disable"}}
	assert.Equal(t, "postgres://u:p@db:5433/att?sslmode=disable", cfg.DatabaseURL())
}
