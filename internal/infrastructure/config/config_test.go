package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "baystate-sync", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 60, cfg.LegacyStore.TimeoutSeconds)
	assert.Equal(t, 25, cfg.Sync.BatchSize)
	assert.Equal(t, 10, cfg.Sync.ProgressInterval)
	assert.Equal(t, 50, cfg.Sync.MaxErrorEntries)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("defaults pass", func(t *testing.T) {
		require.NoError(t, base().validate())
	})

	t.Run("idle conns cannot exceed open conns", func(t *testing.T) {
		cfg := base()
		cfg.Database.MaxIdleConns = 100
		assert.Error(t, cfg.validate())
	})

	t.Run("batch size must be positive", func(t *testing.T) {
		cfg := base()
		cfg.Sync.BatchSize = -1
		assert.Error(t, cfg.validate())
	})

	t.Run("production requires legacy store credentials", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		cfg.Database.Password = "pw"
		cfg.Database.SSLMode = "require"
		cfg.LegacyStore.BaseURL = "https://store.example.com"
		assert.ErrorContains(t, cfg.validate(), "legacy_store credentials")

		cfg.LegacyStore.MerchantID = "m"
		cfg.LegacyStore.Password = "p"
		assert.NoError(t, cfg.validate())
	})
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "app",
		Password: "p@ss:word",
		DBName:   "baystate",
		SSLMode:  "require",
	}
	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5433")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss:word")
}
