package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/eduardoconde-bit/spotify-database/internal/clock"
	"github.com/eduardoconde-bit/spotify-database/internal/output"
	"github.com/eduardoconde-bit/spotify-database/internal/render"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ErrInvalidConfig reports a pipeline wired without its full stage set.
var ErrInvalidConfig = errors.New("invalid pipeline configuration")

// stageOrder is the dependency order. Every stage only ever samples ids of
// entities produced by stages strictly before it.
var stageOrder = []string{
	StageGenres,
	StageUsers,
	StageMusic,
	StageFollowers,
	StagePlaylists,
	StageLikedSongs,
	StagePayment,
}

// Stage names, used for registration and ordering.
const (
	StageGenres     = "genres"
	StageUsers      = "users"
	StageMusic      = "music"
	StageFollowers  = "followers"
	StagePlaylists  = "playlists"
	StageLikedSongs = "liked_songs"
	StagePayment    = "payment"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Clock    clock.Clock
	Rand     *rand.Rand
	Renderer *render.Renderer
	Writer   *output.Writer
	Stages   []Stage `group:"stages"`
}

// Orchestrator runs the registered stages in dependency order, renders every
// emitted row and bulk-writes one artifact file per table.
type Orchestrator struct {
	log      *zap.Logger
	clock    clock.Clock
	rand     *rand.Rand
	renderer *render.Renderer
	writer   *output.Writer
	stages   []Stage
}

func New(p Params) (*Orchestrator, error) {
	if p.Log == nil || p.Clock == nil || p.Rand == nil || p.Renderer == nil || p.Writer == nil {
		return nil, ErrInvalidConfig
	}

	byName := make(map[string]Stage, len(p.Stages))
	for _, s := range p.Stages {
		if _, dup := byName[s.Name()]; dup {
			return nil, fmt.Errorf("%w: duplicate stage %q", ErrInvalidConfig, s.Name())
		}
		byName[s.Name()] = s
	}
	ordered := make([]Stage, 0, len(stageOrder))
	for _, name := range stageOrder {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing stage %q", ErrInvalidConfig, name)
		}
		ordered = append(ordered, s)
		delete(byName, name)
	}
	for name := range byName {
		return nil, fmt.Errorf("%w: unknown stage %q", ErrInvalidConfig, name)
	}

	return &Orchestrator{
		log:      p.Log.Named("pipeline").With(zap.String("component", "orchestrator")),
		clock:    p.Clock,
		rand:     p.Rand,
		renderer: p.Renderer,
		writer:   p.Writer,
		stages:   ordered,
	}, nil
}

// ArtifactReport describes one written output stream.
type ArtifactReport struct {
	Table string
	Path  string
	Rows  int
	Bytes int64
}

// RunReport summarizes a completed run.
type RunReport struct {
	StartedAt time.Time
	Duration  time.Duration
	Artifacts []ArtifactReport
	Counts    map[string]int
}

// Run executes all stages sequentially. The first stage error aborts the run;
// partial output from an aborted run is disposable since every run fully
// overwrites its artifacts.
func (o *Orchestrator) Run(ctx context.Context) (*RunReport, error) {
	started := o.clock.Now()
	run := NewRun(o.rand, started)
	report := &RunReport{StartedAt: run.Now}

	for _, stage := range o.stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}

		log := o.log.With(zap.String("stage", stage.Name()))
		log.Info("stage started")

		artifacts, err := stage.Generate(run)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}

		for _, artifact := range artifacts {
			lines := make([]string, 0, len(artifact.Rows))
			for _, row := range artifact.Rows {
				line, err := o.renderer.Insert(row)
				if err != nil {
					return nil, fmt.Errorf("stage %s: render %s row: %w", stage.Name(), artifact.Table, err)
				}
				lines = append(lines, line)
			}
			path, size, err := o.writer.WriteArtifact(artifact.Table, lines)
			if err != nil {
				return nil, fmt.Errorf("stage %s: write %s: %w", stage.Name(), artifact.Table, err)
			}
			report.Artifacts = append(report.Artifacts, ArtifactReport{
				Table: artifact.Table,
				Path:  path,
				Rows:  len(lines),
				Bytes: size,
			})
			log.Info("artifact written",
				zap.String("table", artifact.Table),
				zap.Int("rows", len(lines)),
				zap.Int64("bytes", size),
			)
		}

		log.Info("stage finished")
	}

	report.Counts = run.Counts.Snapshot()
	report.Duration = o.clock.Now().Sub(started)
	return report, nil
}
