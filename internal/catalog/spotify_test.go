package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eduardoconde-bit/spotify-database/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewReturnsNilWithoutCredentials(t *testing.T) {
	assert.Nil(t, New(config.Config{}, zap.NewNop()))
	assert.Nil(t, New(config.Config{Spotify: config.SpotifyConfig{ClientID: "id"}}, zap.NewNop()))
}

func newTestClient(tokenURL, seedsURL string) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: time.Second},
		tokenURL:     tokenURL,
		seedsURL:     seedsURL,
		clientID:     "id",
		clientSecret: "secret",
		log:          zap.NewNop(),
	}
}

func TestGenreSeeds(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "id", user)
		assert.Equal(t, "secret", pass)
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		_, _ = w.Write([]byte(`{"access_token":"tok"}`))
	}))
	defer tokenSrv.Close()

	seedsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"genres":["rock","  ","a far too long genre tag to keep","acoustic"]}`))
	}))
	defer seedsSrv.Close()

	c := newTestClient(tokenSrv.URL, seedsSrv.URL)

	seeds, err := c.GenreSeeds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"acoustic", "rock"}, seeds)
}

func TestGenreSeedsTokenFailure(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer tokenSrv.Close()

	c := newTestClient(tokenSrv.URL, "http://unused.invalid")

	_, err := c.GenreSeeds(context.Background())
	assert.ErrorContains(t, err, "catalog token")
}

func TestGenreSeedsUpstreamFailure(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"tok"}`))
	}))
	defer tokenSrv.Close()

	seedsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer seedsSrv.Close()

	c := newTestClient(tokenSrv.URL, seedsSrv.URL)

	_, err := c.GenreSeeds(context.Background())
	assert.ErrorContains(t, err, "unexpected status 503")
}
