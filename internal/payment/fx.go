package payment

import (
	"github.com/eduardoconde-bit/spotify-database/internal/pipeline"
	"go.uber.org/fx"
)

var Module = fx.Module("payment",
	fx.Provide(
		NewBillingSimulator,
		fx.Annotate(NewStage,
			fx.As(new(pipeline.Stage)),
			fx.ResultTags(`group:"stages"`),
		),
	),
)
