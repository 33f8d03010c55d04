package payment

import (
	"github.com/eduardoconde-bit/spotify-database/internal/dataset"
	"github.com/eduardoconde-bit/spotify-database/internal/pipeline"
	"go.uber.org/zap"
)

// Stage emits the whole billing slice of the dataset: plans, subscriptions,
// memberships, payment methods and the simulated order history.
type Stage struct {
	log       *zap.Logger
	simulator *BillingSimulator
}

func NewStage(log *zap.Logger, simulator *BillingSimulator) *Stage {
	return &Stage{
		log:       log.Named("payment").With(zap.String("component", "stage")),
		simulator: simulator,
	}
}

func (s *Stage) Name() string { return pipeline.StagePayment }

func (s *Stage) Generate(run *pipeline.Run) ([]dataset.Artifact, error) {
	userBound, err := run.Counts.BoundFor(dataset.TableUsers)
	if err != nil {
		return nil, err
	}

	plans := DefaultPlans()
	planByID := make(map[int]dataset.Plan, len(plans))
	for _, p := range plans {
		planByID[p.PlanID] = p
	}

	userIDs := make([]int, userBound)
	for i := range userIDs {
		userIDs[i] = i + 1
	}

	assigner := NewAssigner(run.Rand, run.Now, s.log)
	subs, err := assigner.Assign(userIDs, plans, DefaultWeights())
	if err != nil {
		return nil, err
	}

	var (
		planRows, subRows, memberRows, methodRows, orderRows []any
	)
	for _, p := range plans {
		planRows = append(planRows, p)
	}

	for _, sub := range subs {
		subRows = append(subRows, sub)
		memberRows = append(memberRows, dataset.Membership{
			UserID: sub.OwnerID,
			SubID:  sub.SubID,
			Role:   dataset.RoleOwner,
		})
		for _, memberID := range sub.MemberIDs {
			memberRows = append(memberRows, dataset.Membership{
				UserID: memberID,
				SubID:  sub.SubID,
				Role:   dataset.RoleMember,
			})
		}

		plan := planByID[sub.PlanID]

		// Only paying owners carry instruments.
		var methods []dataset.PaymentMethod
		if plan.Price > 0 {
			methods = methodsForOwner(run, sub.OwnerID)
			for _, m := range methods {
				methodRows = append(methodRows, m)
			}
		}

		for _, order := range s.simulator.EmitOrders(run, sub, plan, methods) {
			orderRows = append(orderRows, order)
		}
	}

	run.Counts.Record(dataset.TablePlans, len(planRows))
	run.Counts.Record(dataset.TableSubscriptions, len(subRows))
	run.Counts.Record(dataset.TableMemberships, len(memberRows))
	run.Counts.Record(dataset.TablePaymentMethods, len(methodRows))
	run.Counts.Record(dataset.TableOrders, len(orderRows))

	return []dataset.Artifact{
		{Table: dataset.TablePlans, Rows: planRows},
		{Table: dataset.TableSubscriptions, Rows: subRows},
		{Table: dataset.TableMemberships, Rows: memberRows},
		{Table: dataset.TablePaymentMethods, Rows: methodRows},
		{Table: dataset.TableOrders, Rows: orderRows},
	}, nil
}
