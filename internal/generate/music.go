package generate

import (
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/eduardoconde-bit/spotify-database/internal/config"
	"github.com/eduardoconde-bit/spotify-database/internal/dataset"
	"github.com/eduardoconde-bit/spotify-database/internal/pipeline"
	"github.com/eduardoconde-bit/spotify-database/internal/randutil"
)

var (
	albumsPerArtist = []int{1, 2, 3}
	songsPerAlbum   = []int{3, 4, 5, 8}
)

// MusicStage emits artists together with their albums and songs. Only the
// artist count is configured; album and song populations come out of the
// per-artist fan-out, which is why their actual counts must be recorded for
// the stages sampling them later.
type MusicStage struct {
	artistCount int
	faker       *gofakeit.Faker
}

func NewMusicStage(cfg config.Config, faker *gofakeit.Faker) *MusicStage {
	return &MusicStage{artistCount: cfg.ArtistCount, faker: faker}
}

func (s *MusicStage) Name() string { return pipeline.StageMusic }

func (s *MusicStage) Generate(run *pipeline.Run) ([]dataset.Artifact, error) {
	genreBound, err := run.Counts.BoundFor(dataset.TableGenres)
	if err != nil {
		return nil, err
	}

	artists := make([]any, 0, s.artistCount)
	var albums, songs []any

	for artistID := 1; artistID <= s.artistCount; artistID++ {
		genreID := randutil.IntBetween(run.Rand, 1, genreBound)
		artists = append(artists, dataset.Artist{
			ArtistID:    artistID,
			Name:        s.faker.Name(),
			Bio:         truncate(s.faker.Sentence(8), 50),
			Country:     randutil.Choice(run.Rand, countryCodes),
			DateOfBirth: s.faker.DateRange(run.Now.AddDate(-100, 0, 0), run.Now.AddDate(-18, 0, 0)),
			GenreID:     genreID,
		})

		for range randutil.Choice(run.Rand, albumsPerArtist) {
			albumID := run.NextID(dataset.TableAlbums)
			albums = append(albums, dataset.Album{
				AlbumID:     albumID,
				Title:       s.colorTitle(run),
				ReleaseDate: s.faker.DateRange(run.Now.AddDate(-65, 0, 0), run.Now.AddDate(-18, 0, 0)),
				Type:        "album",
				Image:       s.faker.URL(),
				GenreID:     genreID,
				ArtistID:    artistID,
			})

			for range randutil.Choice(run.Rand, songsPerAlbum) {
				songs = append(songs, dataset.Song{
					SongID:   run.NextID(dataset.TableSongs),
					Title:    s.colorTitle(run),
					Duration: randutil.IntBetween(run.Rand, 60000, 600000),
					ArtistID: artistID,
					GenreID:  genreID,
					AlbumID:  albumID,
					Streams:  randutil.IntBetween(run.Rand, 0, 1000000),
				})
			}
		}
	}

	run.Counts.Record(dataset.TableArtists, len(artists))
	run.Counts.Record(dataset.TableAlbums, len(albums))
	run.Counts.Record(dataset.TableSongs, len(songs))

	return []dataset.Artifact{
		{Table: dataset.TableArtists, Rows: artists},
		{Table: dataset.TableAlbums, Rows: albums},
		{Table: dataset.TableSongs, Rows: songs},
	}, nil
}

// colorTitle builds the color-flavored album/track titles the dataset is
// known for, optionally framed by random words.
func (s *MusicStage) colorTitle(run *pipeline.Run) string {
	title := randutil.Choice(run.Rand, []string{s.faker.Word() + " ", ""}) +
		s.faker.Color() +
		randutil.Choice(run.Rand, []string{" " + s.faker.Word(), ""})
	return strings.TrimSpace(title)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max])
}
