package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override. A double underscore
// separates nesting levels: APP_SERVER__PORT sets server.port.
const EnvPrefix = "APP_"

// Database drivers accepted by database.driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Dispatch DispatchConfig `koanf:"dispatch"`
	Geofence GeofenceConfig `koanf:"geofence"`
	Notify   NotifyConfig   `koanf:"notify"`
	Line     LineConfig     `koanf:"line"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

type DatabaseConfig struct {
	Driver          string        `koanf:"driver"`
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	LogLevel        string        `koanf:"log_level"`
	SlowThreshold   time.Duration `koanf:"slow_threshold"`
}

// DispatchConfig sizes the background pool that runs storage work.
type DispatchConfig struct {
	Workers int `koanf:"workers"`
}

type GeofenceConfig struct {
	RadiusMeters float64 `koanf:"radius_meters"`
}

type NotifyConfig struct {
	FlushInterval time.Duration `koanf:"flush_interval"`
	AdminUserID   string        `koanf:"admin_user_id"`
}

type LineConfig struct {
	Enabled       bool   `koanf:"enabled"`
	ChannelSecret string `koanf:"channel_secret"`
	ChannelToken  string `koanf:"channel_token"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaults() map[string]any {
	return map[string]any{
		"server.host":                "0.0.0.0",
		"server.port":                8080,
		"server.read_timeout":        "10s",
		"server.write_timeout":       "30s",
		"server.idle_timeout":        "1m",
		"database.driver":            DriverSQLite,
		"database.dsn":               "reminders.db",
		"database.max_open_conns":    1,
		"database.max_idle_conns":    1,
		"database.conn_max_lifetime": "0s",
		"database.log_level":         "warn",
		"database.slow_threshold":    "200ms",
		"dispatch.workers":           4,
		"geofence.radius_meters":     100.0,
		"notify.flush_interval":      "10s",
		"notify.admin_user_id":       "",
		"line.enabled":               false,
		"line.channel_secret":        "",
		"line.channel_token":         "",
		"log.level":                  "info",
		"log.format":                 "json",
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// configPath and APP_ prefixed environment variables, in that order.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey turns APP_DATABASE__MAX_OPEN_CONNS into database.max_open_conns.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Validate checks the values that cannot be defaulted sensibly.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}

	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for driver %s", c.Database.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("invalid database.driver: %q", c.Database.Driver)
	}

	if c.Dispatch.Workers <= 0 {
		return fmt.Errorf("invalid dispatch.workers: %d", c.Dispatch.Workers)
	}
	if c.Geofence.RadiusMeters <= 0 {
		return fmt.Errorf("invalid geofence.radius_meters: %v", c.Geofence.RadiusMeters)
	}
	if c.Notify.FlushInterval < time.Second {
		return fmt.Errorf("notify.flush_interval must be at least 1s, got %s", c.Notify.FlushInterval)
	}

	if c.Line.Enabled && (c.Line.ChannelSecret == "" || c.Line.ChannelToken == "") {
		return fmt.Errorf("line.channel_secret and line.channel_token must be set when line.enabled is true")
	}
	return nil
}

// Address returns the host:port the HTTP server listens on.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
