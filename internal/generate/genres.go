// Package generate holds the entity synthesizer stages. Each stage fills
// fields with faker data and records its actual emitted counts so later
// stages sample foreign keys only from rows that exist.
package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/eduardoconde-bit/spotify-database/internal/catalog"
	"github.com/eduardoconde-bit/spotify-database/internal/config"
	"github.com/eduardoconde-bit/spotify-database/internal/dataset"
	"github.com/eduardoconde-bit/spotify-database/internal/pipeline"
	"github.com/eduardoconde-bit/spotify-database/internal/randutil"
	"go.uber.org/zap"
)

// baseGenreNames seeds the genre stage when the catalog is unavailable.
var baseGenreNames = []string{
	"Rock", "Pop", "Hip Hop", "Rap", "Electronic", "Classical", "Jazz", "Blues", "R&B",
	"Soul", "Country", "Folk", "Reggae", "Punk", "Metal", "Alternative", "Indie",
	"Funk", "Disco", "Techno", "House", "Ambient", "Trance", "Dubstep", "Trap",
	"Instrumental", "Orchestra", "Soundtrack", "World", "Latin", "K-Pop", "J-Pop",
	"Gospel", "Christian", "New Age", "Experimental", "Grunge", "Post-Rock",
	"Psychedelic", "Garage", "Hardcore", "Death Metal", "Black Metal", "Thrash Metal",
	"Heavy Metal", "Glam Metal", "Progressive Metal", "Doom Metal", "Gothic Metal",
	"Symphonic Metal", "Folk Metal", "Power Metal", "Industrial Metal", "Nu Metal",
	"Metalcore", "Deathcore", "Grindcore", "Punk Rock", "Pop Punk", "Ska Punk",
	"Hardcore Punk", "Post-Punk", "Emo", "Screamo", "Post-Hardcore", "Hard Rock",
	"Soft Rock", "Progressive Rock", "Psychedelic Rock", "Surf Rock", "Garage Rock",
	"Art Rock", "Math Rock", "Noise Rock", "Space Rock", "Pop Rock", "Folk Rock",
	"Country Rock", "Blues Rock", "Funk Rock", "Rap Rock", "Electronic Rock",
}

// genreVariants derives extra names when the requested count outgrows the
// base list.
var genreVariants = []string{"%s Fusion", "Modern %s", "Alternative %s", "Classic %s", "%s Revival"}

type GenreStage struct {
	count   int
	faker   *gofakeit.Faker
	catalog *catalog.Client
	log     *zap.Logger
}

func NewGenreStage(cfg config.Config, faker *gofakeit.Faker, cat *catalog.Client, log *zap.Logger) *GenreStage {
	return &GenreStage{
		count:   cfg.GenreCount,
		faker:   faker,
		catalog: cat,
		log:     log.Named("generate").With(zap.String("component", "genres")),
	}
}

func (s *GenreStage) Name() string { return pipeline.StageGenres }

func (s *GenreStage) Generate(run *pipeline.Run) ([]dataset.Artifact, error) {
	names := s.genreNames(run)

	rows := make([]any, 0, s.count)
	for id := 1; id <= s.count; id++ {
		rows = append(rows, dataset.Genre{
			GenreID:     id,
			Name:        names[id-1],
			Description: s.faker.Sentence(10),
		})
	}

	run.Counts.Record(dataset.TableGenres, len(rows))
	return []dataset.Artifact{{Table: dataset.TableGenres, Rows: rows}}, nil
}

// genreNames assembles at least s.count candidate names: catalog seeds when
// available, then the builtin list, then derived variants, then numbered
// fillers.
func (s *GenreStage) genreNames(run *pipeline.Run) []string {
	names := make([]string, 0, s.count)
	seen := make(map[string]struct{})
	add := func(name string) {
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}

	if s.catalog != nil {
		seeds, err := s.catalog.GenreSeeds(context.Background())
		if err != nil {
			s.log.Warn("genre catalog unavailable, using builtin names", zap.Error(err))
		}
		for _, seed := range seeds {
			add(seed)
		}
	}
	for _, name := range baseGenreNames {
		add(name)
	}

	base := len(names)
	if base > 50 {
		base = 50
	}
	filler := 0
	for len(names) < s.count {
		before := len(names)
		variant := randutil.Choice(run.Rand, genreVariants)
		root := names[run.Rand.Intn(base)]
		add(strings.Replace(variant, "%s", root, 1))
		if len(names) == before {
			// Variant space exhausted; numbered fillers guarantee progress.
			filler++
			add(fmt.Sprintf("Genre %d", filler))
		}
	}

	return names
}
