// Package payment partitions the user population into billing groups and
// simulates their monthly billing history.
package payment

import "github.com/eduardoconde-bit/spotify-database/internal/dataset"

const (
	planIndividual = 1
	planDuo        = 2
	planFamily     = 3
	planStudent    = 4
	planFree       = 5
)

// DefaultPlans returns the fixed plan catalog.
func DefaultPlans() []dataset.Plan {
	return []dataset.Plan{
		{PlanID: planIndividual, Plan: "Individual", Price: 9.99, Description: "Music streaming for one user", MaxMember: 1},
		{PlanID: planDuo, Plan: "Duo", Price: 12.99, Description: "Music streaming for two users", MaxMember: 2},
		{PlanID: planFamily, Plan: "Family", Price: 14.99, Description: "Music streaming for up to 6 family members", MaxMember: 6},
		{PlanID: planStudent, Plan: "Student", Price: 4.99, Description: "Discounted plan for verified students", MaxMember: 1},
		{PlanID: planFree, Plan: "Free", Price: 0.00, Description: "Free plan with advertisements", MaxMember: 1},
	}
}

// DefaultWeights returns the categorical distribution used to draw plans
// during assignment.
func DefaultWeights() map[int]float64 {
	return map[int]float64{
		planIndividual: 0.50,
		planDuo:        0.15,
		planFamily:     0.15,
		planStudent:    0.10,
		planFree:       0.10,
	}
}
