package generate

import (
	"github.com/eduardoconde-bit/spotify-database/internal/dataset"
	"github.com/eduardoconde-bit/spotify-database/internal/pipeline"
	"github.com/eduardoconde-bit/spotify-database/internal/randutil"
)

const (
	minLikesPerUser = 1
	maxLikesPerUser = 7
)

// LikedSongsStage emits the user-likes-song edges.
type LikedSongsStage struct{}

func NewLikedSongsStage() *LikedSongsStage { return &LikedSongsStage{} }

func (s *LikedSongsStage) Name() string { return pipeline.StageLikedSongs }

func (s *LikedSongsStage) Generate(run *pipeline.Run) ([]dataset.Artifact, error) {
	userBound, err := run.Counts.BoundFor(dataset.TableUsers)
	if err != nil {
		return nil, err
	}
	songBound, err := run.Counts.BoundFor(dataset.TableSongs)
	if err != nil {
		return nil, err
	}

	var rows []any
	for userID := 1; userID <= userBound; userID++ {
		want := randutil.IntBetween(run.Rand, minLikesPerUser, maxLikesPerUser)
		for _, songID := range randutil.SampleUnique(run.Rand, want, songBound) {
			rows = append(rows, dataset.LikedSong{UserID: userID, SongID: songID})
		}
	}

	run.Counts.Record(dataset.TableLikedSongs, len(rows))
	return []dataset.Artifact{{Table: dataset.TableLikedSongs, Rows: rows}}, nil
}
