package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "spotify-seeder", cfg.AppName)
	assert.Equal(t, 177, cfg.GenreCount)
	assert.Equal(t, 100, cfg.UserCount)
	assert.Equal(t, 1000, cfg.ArtistCount)
	assert.Equal(t, "spotify_db_data", cfg.OutputDir)
	assert.True(t, cfg.CreateOutputDir)
	assert.Zero(t, cfg.RandSeed)
	assert.False(t, cfg.Spotify.Enabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SEEDER_GENRES", "20")
	t.Setenv("SEEDER_USERS", "50")
	t.Setenv("SEEDER_ARTISTS", "10")
	t.Setenv("SEEDER_OUTPUT_DIR", "/tmp/out")
	t.Setenv("SEEDER_CREATE_OUTPUT_DIR", "false")
	t.Setenv("SEEDER_RAND_SEED", "42")
	t.Setenv("SPOTIFY_CLIENT_ID", " abc ")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "def")

	cfg := Load()

	assert.Equal(t, 20, cfg.GenreCount)
	assert.Equal(t, 50, cfg.UserCount)
	assert.Equal(t, 10, cfg.ArtistCount)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.False(t, cfg.CreateOutputDir)
	assert.Equal(t, int64(42), cfg.RandSeed)
	assert.Equal(t, "abc", cfg.Spotify.ClientID)
	assert.True(t, cfg.Spotify.Enabled())
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SEEDER_USERS", "lots")

	cfg := Load()
	assert.Equal(t, 100, cfg.UserCount)
}

func TestValidate(t *testing.T) {
	base := Load()
	require.NoError(t, base.Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero genres", func(c *Config) { c.GenreCount = 0 }},
		{"zero users", func(c *Config) { c.UserCount = 0 }},
		{"negative artists", func(c *Config) { c.ArtistCount = -1 }},
		{"blank output dir", func(c *Config) { c.OutputDir = "  " }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
