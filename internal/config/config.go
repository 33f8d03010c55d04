package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Module provides the validated seeder configuration.
var Module = fx.Module("config", fx.Provide(New))

// ErrInvalid marks configuration that cannot produce a run.
var ErrInvalid = errors.New("invalid seeder configuration")

// Config holds application configuration.
type Config struct {
	AppName string

	// Requested sizes for the top-level stages. Fan-out stages derive their
	// own actual counts at run time.
	GenreCount  int
	UserCount   int
	ArtistCount int

	OutputDir       string
	CreateOutputDir bool

	// RandSeed pins the random source; 0 seeds from the clock.
	RandSeed int64

	Spotify SpotifyConfig
}

// SpotifyConfig holds credentials for the optional genre catalog enrichment.
type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
}

func (c SpotifyConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// New loads configuration from environment variables and .env file and
// validates it.
func New() (Config, error) {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:         getenv("APP_SERVICE", "spotify-seeder"),
		GenreCount:      getenvInt("SEEDER_GENRES", 177),
		UserCount:       getenvInt("SEEDER_USERS", 100),
		ArtistCount:     getenvInt("SEEDER_ARTISTS", 1000),
		OutputDir:       getenv("SEEDER_OUTPUT_DIR", "spotify_db_data"),
		CreateOutputDir: getenvBool("SEEDER_CREATE_OUTPUT_DIR", true),
		RandSeed:        getenvInt64("SEEDER_RAND_SEED", 0),
		Spotify: SpotifyConfig{
			ClientID:     strings.TrimSpace(getenv("SPOTIFY_CLIENT_ID", "")),
			ClientSecret: strings.TrimSpace(getenv("SPOTIFY_CLIENT_SECRET", "")),
		},
	}
}

// Validate rejects configurations that cannot seed a consistent dataset.
func (c Config) Validate() error {
	if c.GenreCount < 1 {
		return fmt.Errorf("%w: SEEDER_GENRES must be at least 1, got %d", ErrInvalid, c.GenreCount)
	}
	if c.UserCount < 1 {
		return fmt.Errorf("%w: SEEDER_USERS must be at least 1, got %d", ErrInvalid, c.UserCount)
	}
	if c.ArtistCount < 1 {
		return fmt.Errorf("%w: SEEDER_ARTISTS must be at least 1, got %d", ErrInvalid, c.ArtistCount)
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("%w: SEEDER_OUTPUT_DIR must not be empty", ErrInvalid)
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func getenvInt64(key string, def int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return def
	}
	return parsed
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
