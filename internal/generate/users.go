package generate

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/eduardoconde-bit/spotify-database/internal/config"
	"github.com/eduardoconde-bit/spotify-database/internal/dataset"
	"github.com/eduardoconde-bit/spotify-database/internal/pipeline"
	"github.com/eduardoconde-bit/spotify-database/internal/randutil"
)

// subscriptionTypeLabels is a display field only; the authoritative plan
// assignment happens in the payment stage.
var subscriptionTypeLabels = []string{"Free", "Premium", "Premium Family", "Premium Student"}

type UserStage struct {
	count int
	faker *gofakeit.Faker
}

func NewUserStage(cfg config.Config, faker *gofakeit.Faker) *UserStage {
	return &UserStage{count: cfg.UserCount, faker: faker}
}

func (s *UserStage) Name() string { return pipeline.StageUsers }

func (s *UserStage) Generate(run *pipeline.Run) ([]dataset.Artifact, error) {
	rows := make([]any, 0, s.count)
	for id := 1; id <= s.count; id++ {
		username := s.faker.Username()
		rows = append(rows, dataset.User{
			UserID:           id,
			Username:         username,
			Email:            fmt.Sprintf("%s.%d@%s", username, id, s.faker.DomainName()),
			Phone:            s.faker.Phone(),
			Password:         s.faker.Password(true, true, true, true, false, 12),
			DateOfBirth:      s.faker.DateRange(run.Now.AddDate(-99, 0, 0), run.Now.AddDate(-18, 0, 0)),
			Country:          randutil.Choice(run.Rand, countryCodes),
			SubscriptionType: randutil.Choice(run.Rand, subscriptionTypeLabels),
			ProfileImage:     profileImageURL(username),
		})
	}

	run.Counts.Record(dataset.TableUsers, len(rows))
	return []dataset.Artifact{{Table: dataset.TableUsers, Rows: rows}}, nil
}

// profileImageURL builds a deterministic image URL from the username.
func profileImageURL(value string) string {
	return fmt.Sprintf("https://source.unsplash.com/featured/?spotify_%s.jpeg", value)
}
