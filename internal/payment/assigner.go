package payment

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/eduardoconde-bit/spotify-database/internal/dataset"
	"github.com/eduardoconde-bit/spotify-database/internal/randutil"
	"go.uber.org/zap"
)

// ErrInvalidPlans reports a plan catalog the assigner cannot partition with.
var ErrInvalidPlans = errors.New("invalid plan catalog")

const (
	// Subscriptions start between 1 day and 18 months ago.
	maxStartAgeDays = 547
	// Churned subscriptions ended between 1 day and 6 months ago.
	maxChurnAgeDays = 180

	activeProbability    = 0.85
	recurringProbability = 0.95
)

// Assigner partitions a user population into billing groups: every user ends
// up in exactly one subscription, as owner or member, whatever the weight
// configuration or population size.
type Assigner struct {
	rand *rand.Rand
	now  time.Time
	log  *zap.Logger
}

func NewAssigner(r *rand.Rand, now time.Time, log *zap.Logger) *Assigner {
	return &Assigner{
		rand: r,
		now:  now.UTC(),
		log:  log.Named("payment").With(zap.String("component", "assigner")),
	}
}

// Assign greedily packs the shuffled user queue into subscriptions drawn
// from the weighted plan distribution. A multi-member draw that cannot be
// filled from the remaining queue falls back to a single-member plan so no
// under-filled group is ever emitted.
func (a *Assigner) Assign(userIDs []int, plans []dataset.Plan, weights map[int]float64) ([]dataset.Subscription, error) {
	if len(plans) == 0 {
		return nil, fmt.Errorf("%w: no plans", ErrInvalidPlans)
	}
	for _, p := range plans {
		if p.MaxMember < 1 {
			return nil, fmt.Errorf("%w: plan %d has max_member %d", ErrInvalidPlans, p.PlanID, p.MaxMember)
		}
	}
	fallback, hasFallback := singleMemberPlan(plans)

	queue := append([]int(nil), userIDs...)
	a.rand.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})

	planWeights := make([]float64, len(plans))
	for i, p := range plans {
		planWeights[i] = weights[p.PlanID]
	}

	subs := make([]dataset.Subscription, 0, len(queue))
	for len(queue) > 0 {
		plan := plans[randutil.WeightedIndex(a.rand, planWeights)]
		take := plan.MaxMember
		if take > len(queue) {
			take = len(queue)
		}
		if take < plan.MaxMember && plan.MaxMember > 1 && hasFallback {
			plan = fallback
			take = 1
		}

		group := queue[:take]
		queue = queue[take:]

		sub := dataset.Subscription{
			SubID:     len(subs) + 1,
			PlanID:    plan.PlanID,
			Status:    dataset.SubscriptionStatusActive,
			Recurring: a.rand.Float64() < recurringProbability,
			DateStart: a.daysAgo(maxStartAgeDays),
			OwnerID:   group[0],
			MemberIDs: append([]int(nil), group[1:]...),
		}
		if a.rand.Float64() >= activeProbability {
			finish := a.daysAgo(maxChurnAgeDays)
			sub.DateFinish = &finish
			sub.Status = dataset.SubscriptionStatusDisabled
		}
		subs = append(subs, sub)
	}

	a.logDistribution(subs, plans)
	return subs, nil
}

// daysAgo returns a date between 1 and max days before now, at midnight UTC.
func (a *Assigner) daysAgo(max int) time.Time {
	d := a.now.AddDate(0, 0, -randutil.IntBetween(a.rand, 1, max))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func singleMemberPlan(plans []dataset.Plan) (dataset.Plan, bool) {
	for _, p := range plans {
		if p.MaxMember == 1 {
			return p, true
		}
	}
	return dataset.Plan{}, false
}

func (a *Assigner) logDistribution(subs []dataset.Subscription, plans []dataset.Plan) {
	perPlan := make(map[int]int, len(plans))
	for _, s := range subs {
		perPlan[s.PlanID]++
	}
	fields := make([]zap.Field, 0, len(plans)+1)
	fields = append(fields, zap.Int("subscriptions", len(subs)))
	for _, p := range plans {
		fields = append(fields, zap.Int(p.Plan, perPlan[p.PlanID]))
	}
	a.log.Info("users assigned to billing groups", fields...)
}
