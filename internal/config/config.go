package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	HTTPAddr    string `mapstructure:"HTTP_ADDR"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	CronSecret  string `mapstructure:"CRON_SECRET"`

	RedisAddr         string        `mapstructure:"REDIS_ADDR"`
	RedisPassword     string        `mapstructure:"REDIS_PASSWORD"`
	RateLimitRequests int           `mapstructure:"RATE_LIMIT_REQUESTS"`
	RateLimitWindow   time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`

	ClerkSecretKey string `mapstructure:"CLERK_SECRET_KEY"`
	ClerkBaseURL   string `mapstructure:"CLERK_BASE_URL"`

	IGDBClientID          string  `mapstructure:"IGDB_CLIENT_ID"`
	IGDBClientSecret      string  `mapstructure:"IGDB_CLIENT_SECRET"`
	IGDBBaseURL           string  `mapstructure:"IGDB_BASE_URL"`
	IGDBTokenURL          string  `mapstructure:"IGDB_TOKEN_URL"`
	IGDBRequestsPerSecond float64 `mapstructure:"IGDB_REQUESTS_PER_SECOND"`

	AlgoliaAppID   string `mapstructure:"ALGOLIA_APP_ID"`
	AlgoliaAPIKey  string `mapstructure:"ALGOLIA_API_KEY"`
	AlgoliaIndex   string `mapstructure:"ALGOLIA_INDEX"`
	AlgoliaBaseURL string `mapstructure:"ALGOLIA_BASE_URL"`

	Seed SeedConfig `mapstructure:",squash"`
}

// SeedConfig controls the catalog ingestion run.
type SeedConfig struct {
	Schedule              string `mapstructure:"SEED_SCHEDULE"`
	StartPage             int    `mapstructure:"SEED_START_PAGE"`
	EndPage               int    `mapstructure:"SEED_END_PAGE"`
	PageSize              int    `mapstructure:"SEED_PAGE_SIZE"`
	ConflictPolicy        string `mapstructure:"SEED_CONFLICT_POLICY"`
	DefaultMissingRatings bool   `mapstructure:"SEED_DEFAULT_MISSING_RATINGS"`
}

var keys = []string{
	"ENVIRONMENT", "LOG_LEVEL", "HTTP_ADDR", "DATABASE_URL", "JWT_SECRET", "CRON_SECRET",
	"REDIS_ADDR", "REDIS_PASSWORD", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW",
	"CLERK_SECRET_KEY", "CLERK_BASE_URL",
	"IGDB_CLIENT_ID", "IGDB_CLIENT_SECRET", "IGDB_BASE_URL", "IGDB_TOKEN_URL", "IGDB_REQUESTS_PER_SECOND",
	"ALGOLIA_APP_ID", "ALGOLIA_API_KEY", "ALGOLIA_INDEX", "ALGOLIA_BASE_URL",
	"SEED_SCHEDULE", "SEED_START_PAGE", "SEED_END_PAGE", "SEED_PAGE_SIZE",
	"SEED_CONFLICT_POLICY", "SEED_DEFAULT_MISSING_RATINGS",
}

// Load reads the configuration from an optional .env file in dir and from
// environment variables. Environment variables win over the file.
func Load(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("RATE_LIMIT_REQUESTS", 1)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Second)
	v.SetDefault("CLERK_BASE_URL", "https://api.clerk.com/v1")
	v.SetDefault("IGDB_BASE_URL", "https://api.igdb.com/v4")
	v.SetDefault("IGDB_TOKEN_URL", "https://id.twitch.tv/oauth2/token")
	v.SetDefault("IGDB_REQUESTS_PER_SECOND", 4)
	v.SetDefault("ALGOLIA_INDEX", "games")
	v.SetDefault("SEED_START_PAGE", 0)
	v.SetDefault("SEED_END_PAGE", 600)
	v.SetDefault("SEED_PAGE_SIZE", 500)
	v.SetDefault("SEED_CONFLICT_POLICY", "skip")
	v.SetDefault("SEED_DEFAULT_MISSING_RATINGS", true)

	if dir != "" {
		v.AddConfigPath(dir)
		v.SetConfigName(".env")
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about, so bind every key explicitly.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.Seed.ConflictPolicy = strings.ToLower(strings.TrimSpace(cfg.Seed.ConflictPolicy))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings every command needs.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.RateLimitRequests < 1 {
		return errors.New("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.RateLimitWindow <= 0 {
		return errors.New("RATE_LIMIT_WINDOW must be positive")
	}
	switch c.Seed.ConflictPolicy {
	case "skip", "refresh", "error":
	default:
		return errors.New("SEED_CONFLICT_POLICY must be one of skip, refresh, error")
	}
	if c.Seed.PageSize < 1 || c.Seed.PageSize > 500 {
		return errors.New("SEED_PAGE_SIZE must be between 1 and 500")
	}
	if c.Seed.StartPage < 0 || c.Seed.EndPage < c.Seed.StartPage {
		return errors.New("SEED_START_PAGE and SEED_END_PAGE must describe a valid range")
	}
	return nil
}

// ValidateServer checks the settings needed to serve HTTP traffic.
func (c *Config) ValidateServer() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

// ValidateSeed checks the settings needed to ingest the catalog.
func (c *Config) ValidateSeed() error {
	if c.IGDBClientID == "" || c.IGDBClientSecret == "" {
		return errors.New("IGDB_CLIENT_ID and IGDB_CLIENT_SECRET are required")
	}
	if c.AlgoliaAppID == "" || c.AlgoliaAPIKey == "" {
		return errors.New("ALGOLIA_APP_ID and ALGOLIA_API_KEY are required")
	}
	return nil
}
