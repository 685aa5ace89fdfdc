package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "agriwatch", cfg.App.Name)
	assert.Equal(t, "agriwatch.db", cfg.Storage.Path)
	assert.Equal(t, 30, cfg.History.Days)
	assert.Equal(t, int64(0), cfg.History.Seed)
	assert.Equal(t, 1000, cfg.Export.MaxDataPoints)
	assert.False(t, cfg.Location.Enabled)
	assert.False(t, cfg.Alerting.Enabled)
	assert.Equal(t, "https://api.telegram.org", cfg.Alerting.Telegram.APIBase)
	assert.Equal(t, 10*time.Second, cfg.Alerting.Telegram.Timeout)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
storage:
  path: /tmp/custom.db
location:
  enabled: true
  latitude: 37.7749
  longitude: -122.4194
history:
  days: 14
  seed: 42
alerting:
  telegram:
    timeout: 5s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.Storage.Path)
	assert.True(t, cfg.Location.Enabled)
	assert.InDelta(t, 37.7749, cfg.Location.Latitude, 1e-9)
	assert.Equal(t, 14, cfg.History.Days)
	assert.Equal(t, int64(42), cfg.History.Seed)
	assert.Equal(t, 5*time.Second, cfg.Alerting.Telegram.Timeout)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func validConfig() *Config {
	return &Config{
		Storage: StorageConfig{Path: "agriwatch.db"},
		History: HistoryConfig{Days: 30},
		Export:  ExportConfig{MaxDataPoints: 1000},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty storage path",
			mutate:  func(c *Config) { c.Storage.Path = "" },
			wantErr: "storage.path",
		},
		{
			name:    "non-positive history days",
			mutate:  func(c *Config) { c.History.Days = 0 },
			wantErr: "history.days",
		},
		{
			name:    "non-positive max data points",
			mutate:  func(c *Config) { c.Export.MaxDataPoints = 0 },
			wantErr: "export.max_data_points",
		},
		{
			name: "latitude out of range",
			mutate: func(c *Config) {
				c.Location.Enabled = true
				c.Location.Latitude = 91
			},
			wantErr: "location.latitude",
		},
		{
			name: "longitude out of range",
			mutate: func(c *Config) {
				c.Location.Enabled = true
				c.Location.Longitude = -181
			},
			wantErr: "location.longitude",
		},
		{
			name: "out-of-range location ignored when disabled",
			mutate: func(c *Config) {
				c.Location.Enabled = false
				c.Location.Latitude = 91
			},
		},
		{
			name: "telegram enabled without token",
			mutate: func(c *Config) {
				c.Alerting.Telegram.Enabled = true
				c.Alerting.Telegram.ChatID = "chat"
			},
			wantErr: "bot_token",
		},
		{
			name: "telegram enabled without chat id",
			mutate: func(c *Config) {
				c.Alerting.Telegram.Enabled = true
				c.Alerting.Telegram.BotToken = "token"
			},
			wantErr: "chat_id",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestResolveMaxPoints(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, 1000, cfg.ResolveMaxPoints(0))
	assert.Equal(t, 250, cfg.ResolveMaxPoints(250))
}
