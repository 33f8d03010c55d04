package main

import (
	"context"
	"math/rand"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/eduardoconde-bit/spotify-database/internal/catalog"
	"github.com/eduardoconde-bit/spotify-database/internal/clock"
	"github.com/eduardoconde-bit/spotify-database/internal/config"
	"github.com/eduardoconde-bit/spotify-database/internal/generate"
	"github.com/eduardoconde-bit/spotify-database/internal/logging"
	"github.com/eduardoconde-bit/spotify-database/internal/output"
	"github.com/eduardoconde-bit/spotify-database/internal/payment"
	"github.com/eduardoconde-bit/spotify-database/internal/pipeline"
	"github.com/eduardoconde-bit/spotify-database/internal/randutil"
	"github.com/eduardoconde-bit/spotify-database/internal/render"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		config.Module,
		logging.Module,
		clock.Module,
		fx.Provide(NewRand, NewFaker),

		catalog.Module,
		render.Module,
		output.Module,

		generate.Module,
		payment.Module,
		pipeline.Module,

		fx.Invoke(RunSeeder),
	)
	app.Run()
}

func NewRand(cfg config.Config, clk clock.Clock) *rand.Rand {
	return randutil.NewSource(cfg.RandSeed, clk.Now().UnixNano())
}

func NewFaker(cfg config.Config) *gofakeit.Faker {
	return gofakeit.New(uint64(cfg.RandSeed))
}

// RunSeeder executes one full generation run once the app has started, then
// shuts the process down with the run outcome as exit code.
func RunSeeder(lc fx.Lifecycle, sh fx.Shutdowner, orch *pipeline.Orchestrator, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				report, err := orch.Run(context.Background())
				if err != nil {
					log.Error("seeding run failed", zap.Error(err))
					_ = sh.Shutdown(fx.ExitCode(1))
					return
				}
				log.Info("seeding run finished",
					zap.Duration("duration", report.Duration),
					zap.Int("artifacts", len(report.Artifacts)),
					zap.Any("counts", report.Counts),
				)
				_ = sh.Shutdown()
			}()
			return nil
		},
	})
}
