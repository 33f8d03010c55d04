package generate

import (
	"github.com/eduardoconde-bit/spotify-database/internal/pipeline"
	"go.uber.org/fx"
)

var Module = fx.Module("generate",
	fx.Provide(
		asStage(NewGenreStage),
		asStage(NewUserStage),
		asStage(NewMusicStage),
		asStage(NewFollowersStage),
		asStage(NewPlaylistStage),
		asStage(NewLikedSongsStage),
	),
)

func asStage(constructor any) any {
	return fx.Annotate(constructor,
		fx.As(new(pipeline.Stage)),
		fx.ResultTags(`group:"stages"`),
	)
}
