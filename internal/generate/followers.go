package generate

import (
	"github.com/eduardoconde-bit/spotify-database/internal/dataset"
	"github.com/eduardoconde-bit/spotify-database/internal/pipeline"
	"github.com/eduardoconde-bit/spotify-database/internal/randutil"
)

const (
	minFollowsPerUser = 1
	maxFollowsPerUser = 5
)

// FollowersStage emits the user-follows-artist edges.
type FollowersStage struct{}

func NewFollowersStage() *FollowersStage { return &FollowersStage{} }

func (s *FollowersStage) Name() string { return pipeline.StageFollowers }

func (s *FollowersStage) Generate(run *pipeline.Run) ([]dataset.Artifact, error) {
	userBound, err := run.Counts.BoundFor(dataset.TableUsers)
	if err != nil {
		return nil, err
	}
	artistBound, err := run.Counts.BoundFor(dataset.TableArtists)
	if err != nil {
		return nil, err
	}

	var rows []any
	for userID := 1; userID <= userBound; userID++ {
		want := randutil.IntBetween(run.Rand, minFollowsPerUser, maxFollowsPerUser)
		for _, artistID := range randutil.SampleUnique(run.Rand, want, artistBound) {
			rows = append(rows, dataset.ArtistFollower{UserID: userID, ArtistID: artistID})
		}
	}

	run.Counts.Record(dataset.TableFollowers, len(rows))
	return []dataset.Artifact{{Table: dataset.TableFollowers, Rows: rows}}, nil
}
