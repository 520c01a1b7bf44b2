package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/vglist")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SEED_END_PAGE", "20")
	t.Setenv("RATE_LIMIT_WINDOW", "2s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/vglist", cfg.DatabaseURL)
	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.Equal(t, 20, cfg.Seed.EndPage)
	assert.Equal(t, 500, cfg.Seed.PageSize)
	assert.Equal(t, "skip", cfg.Seed.ConflictPolicy)
	assert.True(t, cfg.Seed.DefaultMissingRatings)
	assert.Equal(t, 2*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, 1, cfg.RateLimitRequests)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
}

func TestLoadFromDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "DATABASE_URL=postgres://file/vglist\nALGOLIA_INDEX=games_dev\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	t.Setenv("ALGOLIA_INDEX", "games_env")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "postgres://file/vglist", cfg.DatabaseURL)
	assert.Equal(t, "games_env", cfg.AlgoliaIndex)
}

func TestLoadNormalizesConflictPolicy(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/vglist")
	t.Setenv("SEED_CONFLICT_POLICY", " Refresh ")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "refresh", cfg.Seed.ConflictPolicy)
}

func TestLoadMissingDotEnvIsNotAnError(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/vglist")

	_, err := Load(t.TempDir())
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			DatabaseURL:       "postgres://localhost/vglist",
			RateLimitRequests: 1,
			RateLimitWindow:   time.Second,
			Seed:              SeedConfig{EndPage: 600, PageSize: 500, ConflictPolicy: "skip"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing database", mutate: func(c *Config) { c.DatabaseURL = "" }, wantErr: true},
		{name: "unknown conflict policy", mutate: func(c *Config) { c.Seed.ConflictPolicy = "merge" }, wantErr: true},
		{name: "refresh policy", mutate: func(c *Config) { c.Seed.ConflictPolicy = "refresh" }},
		{name: "policy not normalized", mutate: func(c *Config) { c.Seed.ConflictPolicy = "Skip" }, wantErr: true},
		{name: "page size too large", mutate: func(c *Config) { c.Seed.PageSize = 501 }, wantErr: true},
		{name: "inverted page range", mutate: func(c *Config) { c.Seed.StartPage = 10; c.Seed.EndPage = 5 }, wantErr: true},
		{name: "zero window", mutate: func(c *Config) { c.RateLimitWindow = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSeedRequiresCredentials(t *testing.T) {
	cfg := Config{}
	assert.Error(t, cfg.ValidateSeed())

	cfg.IGDBClientID, cfg.IGDBClientSecret = "id", "secret"
	assert.Error(t, cfg.ValidateSeed())

	cfg.AlgoliaAppID, cfg.AlgoliaAPIKey = "app", "key"
	assert.NoError(t, cfg.ValidateSeed())
}
