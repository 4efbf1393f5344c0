package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Log      LogConfig
	HTTP     HTTPConfig
	Pantry   PantryConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds the embedded SQLite database settings
type DatabaseConfig struct {
	Path         string // database file path, or ":memory:"
	MaxOpenConns int
	MaxIdleConns int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// PantryConfig holds pantry engine defaults. Threshold and expiry seed the
// persisted preferences on first run; overrides map item names to a daily
// consumption rate and always win over recorded history. Override values are
// strings so a malformed rate falls through to estimation instead of failing.
type PantryConfig struct {
	ReminderThresholdDays int
	DefaultExpiryDays     int
	ConsumptionOverrides  map[string]string
	PlanDays              int
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with GROCER_ prefix (e.g., GROCER_DATABASE_PATH)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("GROCER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Path:         v.GetString("database.path"),
			MaxOpenConns: v.GetInt("database.max_open_conns"),
			MaxIdleConns: v.GetInt("database.max_idle_conns"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:  v.GetDuration("http.read_timeout"),
			WriteTimeout: v.GetDuration("http.write_timeout"),
			IdleTimeout:  v.GetDuration("http.idle_timeout"),
		},
		Pantry: PantryConfig{
			ReminderThresholdDays: v.GetInt("pantry.reminder_threshold_days"),
			DefaultExpiryDays:     v.GetInt("pantry.default_expiry_days"),
			ConsumptionOverrides:  v.GetStringMapString("pantry.consumption_overrides"),
			PlanDays:              v.GetInt("pantry.plan_days"),
		},
	}

	applyDefaults(cfg, v)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config, v *viper.Viper) {
	if cfg.App.Name == "" {
		cfg.App.Name = "smartgrocer-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "smartgrocer.db"
	}
	if cfg.Database.MaxOpenConns == 0 {
		// SQLite serializes writers anyway; a single connection avoids
		// SQLITE_BUSY under concurrent requests
		cfg.Database.MaxOpenConns = 1
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 1
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		if cfg.App.Env == "production" {
			cfg.Log.Format = "json"
		} else {
			cfg.Log.Format = "console"
		}
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if !v.IsSet("pantry.reminder_threshold_days") {
		cfg.Pantry.ReminderThresholdDays = 3
	}
	if !v.IsSet("pantry.default_expiry_days") {
		cfg.Pantry.DefaultExpiryDays = 7
	}
	if cfg.Pantry.PlanDays == 0 {
		cfg.Pantry.PlanDays = 3
	}
}

// validate checks the configuration for invalid values
func (c *Config) validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}
	if c.Pantry.ReminderThresholdDays < 0 {
		return fmt.Errorf("pantry.reminder_threshold_days must not be negative")
	}
	if c.Pantry.DefaultExpiryDays < 0 {
		return fmt.Errorf("pantry.default_expiry_days must not be negative")
	}
	if c.Pantry.PlanDays < 1 {
		return fmt.Errorf("pantry.plan_days must be at least 1")
	}
	return nil
}
