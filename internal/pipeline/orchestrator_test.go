package pipeline_test

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/eduardoconde-bit/spotify-database/internal/clock"
	"github.com/eduardoconde-bit/spotify-database/internal/dataset"
	"github.com/eduardoconde-bit/spotify-database/internal/output"
	"github.com/eduardoconde-bit/spotify-database/internal/pipeline"
	"github.com/eduardoconde-bit/spotify-database/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubStage struct {
	name     string
	generate func(run *pipeline.Run) ([]dataset.Artifact, error)
}

func (s *stubStage) Name() string { return s.name }

func (s *stubStage) Generate(run *pipeline.Run) ([]dataset.Artifact, error) {
	if s.generate == nil {
		return nil, nil
	}
	return s.generate(run)
}

func noopStages(names ...string) []pipeline.Stage {
	stages := make([]pipeline.Stage, 0, len(names))
	for _, name := range names {
		stages = append(stages, &stubStage{name: name})
	}
	return stages
}

var allStageNames = []string{
	pipeline.StageGenres,
	pipeline.StageUsers,
	pipeline.StageMusic,
	pipeline.StageFollowers,
	pipeline.StagePlaylists,
	pipeline.StageLikedSongs,
	pipeline.StagePayment,
}

func newParams(t *testing.T, stages []pipeline.Stage) pipeline.Params {
	t.Helper()

	renderer, err := render.New()
	require.NoError(t, err)

	writer, err := output.New(t.TempDir(), false)
	require.NoError(t, err)

	return pipeline.Params{
		Log:      zap.NewNop(),
		Clock:    clock.NewFakeClock(time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)),
		Rand:     rand.New(rand.NewSource(1)),
		Renderer: renderer,
		Writer:   writer,
		Stages:   stages,
	}
}

func TestNewRequiresAllStages(t *testing.T) {
	_, err := pipeline.New(newParams(t, noopStages(pipeline.StageGenres)))
	assert.ErrorIs(t, err, pipeline.ErrInvalidConfig)
}

func TestNewRejectsDuplicateStage(t *testing.T) {
	stages := noopStages(allStageNames...)
	stages = append(stages, &stubStage{name: pipeline.StageUsers})

	_, err := pipeline.New(newParams(t, stages))
	assert.ErrorIs(t, err, pipeline.ErrInvalidConfig)
}

func TestNewRejectsUnknownStage(t *testing.T) {
	stages := noopStages(allStageNames...)
	stages = append(stages, &stubStage{name: "telemetry"})

	_, err := pipeline.New(newParams(t, stages))
	assert.ErrorIs(t, err, pipeline.ErrInvalidConfig)
}

func TestRunExecutesStagesInOrderAndPropagatesCounts(t *testing.T) {
	var executed []string

	stages := make([]pipeline.Stage, 0, len(allStageNames))
	for _, name := range allStageNames {
		name := name
		stages = append(stages, &stubStage{
			name: name,
			generate: func(run *pipeline.Run) ([]dataset.Artifact, error) {
				executed = append(executed, name)

				switch name {
				case pipeline.StageMusic:
					run.Counts.Record(dataset.TableSongs, 37)
					return []dataset.Artifact{{
						Table: dataset.TableSongs,
						Rows:  []any{dataset.Song{SongID: 1, Title: "one", AlbumID: 1, ArtistID: 1, GenreID: 1}},
					}}, nil
				case pipeline.StageLikedSongs:
					bound, err := run.Counts.BoundFor(dataset.TableSongs)
					if err != nil {
						return nil, err
					}
					assert.Equal(t, 37, bound)
				}
				return nil, nil
			},
		})
	}

	params := newParams(t, stages)
	orch, err := pipeline.New(params)
	require.NoError(t, err)

	report, err := orch.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, allStageNames, executed)
	assert.Equal(t, 37, report.Counts[dataset.TableSongs])
	require.Len(t, report.Artifacts, 1)

	art := report.Artifacts[0]
	assert.Equal(t, dataset.TableSongs, art.Table)
	assert.Equal(t, 1, art.Rows)

	data, err := os.ReadFile(art.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INSERT INTO")
	assert.Contains(t, string(data), dataset.TableSongs)
}

func TestRunAbortsOnFirstStageError(t *testing.T) {
	boom := errors.New("boom")
	var laterRan bool

	stages := make([]pipeline.Stage, 0, len(allStageNames))
	for _, name := range allStageNames {
		name := name
		stages = append(stages, &stubStage{
			name: name,
			generate: func(run *pipeline.Run) ([]dataset.Artifact, error) {
				switch name {
				case pipeline.StageUsers:
					return nil, boom
				case pipeline.StageMusic, pipeline.StagePayment:
					laterRan = true
				}
				return nil, nil
			},
		})
	}

	orch, err := pipeline.New(newParams(t, stages))
	require.NoError(t, err)

	_, err = orch.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "stage users")
	assert.False(t, laterRan)
}

func TestRunHonorsContextCancellation(t *testing.T) {
	orch, err := pipeline.New(newParams(t, noopStages(allStageNames...)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = orch.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunNextIDIsSequentialPerEntity(t *testing.T) {
	run := pipeline.NewRun(rand.New(rand.NewSource(1)), time.Now())

	assert.Equal(t, 1, run.NextID(dataset.TableAlbums))
	assert.Equal(t, 2, run.NextID(dataset.TableAlbums))
	assert.Equal(t, 1, run.NextID(dataset.TableSongs))
}
