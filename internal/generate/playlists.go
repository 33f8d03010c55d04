package generate

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/eduardoconde-bit/spotify-database/internal/dataset"
	"github.com/eduardoconde-bit/spotify-database/internal/pipeline"
	"github.com/eduardoconde-bit/spotify-database/internal/randutil"
)

const (
	minPlaylistsPerUser = 1
	maxPlaylistsPerUser = 5
)

var (
	playlistSizes        = []int{5, 10, 15, 20}
	playlistVisibilities = []string{"public", "private"}
)

// PlaylistStage emits playlists and their song memberships. Song ids are
// sampled against the actual song population, never the configured artist
// count.
type PlaylistStage struct {
	faker *gofakeit.Faker
}

func NewPlaylistStage(faker *gofakeit.Faker) *PlaylistStage {
	return &PlaylistStage{faker: faker}
}

func (s *PlaylistStage) Name() string { return pipeline.StagePlaylists }

func (s *PlaylistStage) Generate(run *pipeline.Run) ([]dataset.Artifact, error) {
	userBound, err := run.Counts.BoundFor(dataset.TableUsers)
	if err != nil {
		return nil, err
	}
	songBound, err := run.Counts.BoundFor(dataset.TableSongs)
	if err != nil {
		return nil, err
	}

	var playlists, playlistSongs []any
	for userID := 1; userID <= userBound; userID++ {
		for range randutil.IntBetween(run.Rand, minPlaylistsPerUser, maxPlaylistsPerUser) {
			playlistID := run.NextID(dataset.TablePlaylists)
			playlists = append(playlists, dataset.Playlist{
				PlaylistID: playlistID,
				Name:       randutil.Choice(run.Rand, []string{s.faker.Color(), s.faker.Language()}),
				UserID:     userID,
				Visibility: randutil.Choice(run.Rand, playlistVisibilities),
			})

			size := randutil.Choice(run.Rand, playlistSizes)
			for _, songID := range randutil.SampleUnique(run.Rand, size, songBound) {
				playlistSongs = append(playlistSongs, dataset.PlaylistSong{
					PlaylistID: playlistID,
					SongID:     songID,
				})
			}
		}
	}

	run.Counts.Record(dataset.TablePlaylists, len(playlists))
	run.Counts.Record(dataset.TablePlaylistSongs, len(playlistSongs))
	return []dataset.Artifact{
		{Table: dataset.TablePlaylists, Rows: playlists},
		{Table: dataset.TablePlaylistSongs, Rows: playlistSongs},
	}, nil
}
