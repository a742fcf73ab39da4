package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	SQLite SQLiteConfig

	// ChoreChum specifics
	Household HouseholdConfig
	RateLimit RateLimitConfig
	Reminder  ReminderConfig
	Scoring   ScoringConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SQLiteConfig struct {
	Path string // file path or ":memory:"
}

type HouseholdConfig struct {
	// DefaultTimezone is used for households created without one.
	DefaultTimezone string
	// ParseCacheTTL bounds how long the parse endpoint may reuse a loaded
	// household. Member and room changes evict it sooner.
	ParseCacheTTL  time.Duration
	ParseCacheSize int
}

// RateLimitConfig throttles the keystroke-driven parse endpoint per user.
type RateLimitConfig struct {
	ParsePerMin int
	Burst       int
	MaxKeys     int
	TTL         time.Duration
}

type ReminderConfig struct {
	Enabled     bool
	Schedule    string
	Window      time.Duration
	Concurrency int
}

type ScoringConfig struct {
	PointsPerChore    int
	StreakBonus       int
	LeaderboardWindow time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/chorechum/.
// Every key can be overridden from the environment, e.g. SQLITE_PATH.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/chorechum/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.SQLite.Path = viper.GetString("sqlite.path")

	// ChoreChum specifics
	cfg.Household.DefaultTimezone = viper.GetString("household.default_timezone")
	cfg.Household.ParseCacheTTL = viper.GetDuration("household.parse_cache_ttl")
	cfg.Household.ParseCacheSize = viper.GetInt("household.parse_cache_size")

	cfg.RateLimit.ParsePerMin = viper.GetInt("rate_limit.parse_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxKeys = viper.GetInt("rate_limit.max_keys")
	cfg.RateLimit.TTL = viper.GetDuration("rate_limit.ttl")

	cfg.Reminder.Enabled = viper.GetBool("reminder.enabled")
	cfg.Reminder.Schedule = viper.GetString("reminder.schedule")
	cfg.Reminder.Window = viper.GetDuration("reminder.window")
	cfg.Reminder.Concurrency = viper.GetInt("reminder.concurrency")

	cfg.Scoring.PointsPerChore = viper.GetInt("scoring.points_per_chore")
	cfg.Scoring.StreakBonus = viper.GetInt("scoring.streak_bonus")
	cfg.Scoring.LeaderboardWindow = viper.GetDuration("scoring.leaderboard_window")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("sqlite.path", "chorechum.db")

	viper.SetDefault("household.default_timezone", "UTC")
	viper.SetDefault("household.parse_cache_ttl", "30s")
	viper.SetDefault("household.parse_cache_size", 256)

	viper.SetDefault("rate_limit.parse_per_min", 120)
	viper.SetDefault("rate_limit.burst", 20)
	viper.SetDefault("rate_limit.max_keys", 1000)
	viper.SetDefault("rate_limit.ttl", "5m")

	viper.SetDefault("reminder.enabled", true)
	viper.SetDefault("reminder.schedule", "@every 15m")
	viper.SetDefault("reminder.window", "1h")
	viper.SetDefault("reminder.concurrency", 4)

	viper.SetDefault("scoring.points_per_chore", 10)
	viper.SetDefault("scoring.streak_bonus", 5)
	viper.SetDefault("scoring.leaderboard_window", "720h")
}

// validate rejects values the service cannot start with.
func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", cfg.HTTPServer.Port)
	}
	if cfg.SQLite.Path == "" {
		return fmt.Errorf("sqlite.path is required")
	}
	if _, err := time.LoadLocation(cfg.Household.DefaultTimezone); err != nil {
		return fmt.Errorf("household.default_timezone: %w", err)
	}
	if cfg.Scoring.PointsPerChore <= 0 {
		return fmt.Errorf("scoring.points_per_chore must be positive")
	}
	if cfg.Scoring.StreakBonus < 0 {
		return fmt.Errorf("scoring.streak_bonus must not be negative")
	}
	if cfg.Reminder.Enabled && cfg.Reminder.Window <= 0 {
		return fmt.Errorf("reminder.window must be positive")
	}
	return nil
}
