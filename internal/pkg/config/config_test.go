package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locationreminder/internal/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, time.Minute, cfg.Server.IdleTimeout)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "reminders.db", cfg.Database.DSN)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold)
	assert.Equal(t, 4, cfg.Dispatch.Workers)
	assert.Equal(t, 100.0, cfg.Geofence.RadiusMeters)
	assert.Equal(t, 10*time.Second, cfg.Notify.FlushInterval)
	assert.False(t, cfg.Line.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_SERVER__PORT", "9090")
	t.Setenv("APP_DATABASE__DRIVER", "memory")
	t.Setenv("APP_DISPATCH__WORKERS", "8")
	t.Setenv("APP_GEOFENCE__RADIUS_METERS", "250")
	t.Setenv("APP_NOTIFY__FLUSH_INTERVAL", "1m")
	t.Setenv("APP_NOTIFY__ADMIN_USER_ID", "U123")
	t.Setenv("APP_LOG__LEVEL", "debug")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, config.DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 8, cfg.Dispatch.Workers)
	assert.Equal(t, 250.0, cfg.Geofence.RadiusMeters)
	assert.Equal(t, time.Minute, cfg.Notify.FlushInterval)
	assert.Equal(t, "U123", cfg.Notify.AdminUserID)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 7070
database:
  driver: postgres
  dsn: "host=localhost user=app dbname=reminders sslmode=disable"
line:
  enabled: true
  channel_secret: secret
  channel_token: token
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Run("file values override defaults", func(t *testing.T) {
		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, 7070, cfg.Server.Port)
		assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
		assert.True(t, cfg.Line.Enabled)
		assert.Equal(t, "secret", cfg.Line.ChannelSecret)
		assert.Equal(t, "token", cfg.Line.ChannelToken)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("APP_SERVER__PORT", "6060")

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, 6060, cfg.Server.Port)
	})
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "port out of range", env: map[string]string{"APP_SERVER__PORT": "70000"}},
		{name: "unknown driver", env: map[string]string{"APP_DATABASE__DRIVER": "oracle"}},
		{name: "empty dsn", env: map[string]string{"APP_DATABASE__DSN": " "}},
		{name: "no workers", env: map[string]string{"APP_DISPATCH__WORKERS": "0"}},
		{name: "negative radius", env: map[string]string{"APP_GEOFENCE__RADIUS_METERS": "-1"}},
		{name: "flush too fast", env: map[string]string{"APP_NOTIFY__FLUSH_INTERVAL": "10ms"}},
		{name: "line without credentials", env: map[string]string{"APP_LINE__ENABLED": "true"}},
		{name: "bad duration", env: map[string]string{"APP_SERVER__READ_TIMEOUT": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load("")

			assert.Error(t, err)
		})
	}
}
