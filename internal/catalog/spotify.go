// Package catalog enriches the genre stage with names from the Spotify Web
// API. The pipeline treats its output as just another list of candidate
// genre names; any failure means the builtin names are used alone.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/eduardoconde-bit/spotify-database/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the catalog client, or nil when no credentials are
// configured.
var Module = fx.Module("catalog", fx.Provide(New))

const (
	defaultTokenURL = "https://accounts.spotify.com/api/token"
	defaultSeedsURL = "https://api.spotify.com/v1/recommendations/available-genre-seeds"

	// Names longer than this are junk tags rather than genres.
	maxGenreNameLen = 25
)

type Client struct {
	httpClient   *http.Client
	tokenURL     string
	seedsURL     string
	clientID     string
	clientSecret string
	log          *zap.Logger
}

// New returns a catalog client, or nil when enrichment is not configured.
func New(cfg config.Config, log *zap.Logger) *Client {
	if !cfg.Spotify.Enabled() {
		return nil
	}
	return &Client{
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		tokenURL:     defaultTokenURL,
		seedsURL:     defaultSeedsURL,
		clientID:     cfg.Spotify.ClientID,
		clientSecret: cfg.Spotify.ClientSecret,
		log:          log.Named("catalog").With(zap.String("component", "spotify")),
	}
}

// GenreSeeds fetches the available genre seeds, filtered to plausible names
// and sorted alphabetically.
func (c *Client) GenreSeeds(ctx context.Context) ([]string, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.seedsURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog request: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Genres []string `json:"genres"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("catalog response: %w", err)
	}

	seeds := make([]string, 0, len(payload.Genres))
	for _, name := range payload.Genres {
		name = strings.TrimSpace(name)
		if name == "" || len(name) > maxGenreNameLen {
			continue
		}
		seeds = append(seeds, name)
	}
	sort.Strings(seeds)

	c.log.Info("genre seeds fetched", zap.Int("count", len(seeds)))
	return seeds, nil
}

func (c *Client) token(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("empty access token")
	}
	return payload.AccessToken, nil
}
