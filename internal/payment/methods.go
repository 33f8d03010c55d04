package payment

import (
	"fmt"
	"time"

	"github.com/eduardoconde-bit/spotify-database/internal/dataset"
	"github.com/eduardoconde-bit/spotify-database/internal/pipeline"
	"github.com/eduardoconde-bit/spotify-database/internal/randutil"
)

const methodOwnershipProbability = 0.90

var (
	methodTypes       = []string{"credit_card", "google_pay"}
	methodTypeWeights = []float64{0.75, 0.25}

	methodCounts       = []int{1, 2}
	methodCountWeights = []float64{0.80, 0.20}

	cardBrands = []string{"Visa", "MasterCard", "American Express", "Discover", "JCB"}
)

// methodsForOwner synthesizes tokenized payment instruments for one paying
// owner. Roughly one in ten owners carries none, which later suppresses
// their order history.
func methodsForOwner(run *pipeline.Run, userID int) []dataset.PaymentMethod {
	if run.Rand.Float64() >= methodOwnershipProbability {
		return nil
	}

	count := methodCounts[randutil.WeightedIndex(run.Rand, methodCountWeights)]
	methods := make([]dataset.PaymentMethod, 0, count)
	for range count {
		methods = append(methods, dataset.PaymentMethod{
			MethodID:   run.NextID(dataset.TablePaymentMethods),
			UserID:     userID,
			MethodType: methodTypes[randutil.WeightedIndex(run.Rand, methodTypeWeights)],
			CardBrand:  randutil.Choice(run.Rand, cardBrands),
			CardLast4:  fmt.Sprintf("%04d", run.Rand.Intn(10000)),
			ExpiryDate: randomExpiry(run),
			Token:      "tok_" + rawHex(20),
		})
	}
	return methods
}

// randomExpiry lands one to five years out, on a day every month has.
func randomExpiry(run *pipeline.Run) time.Time {
	return time.Date(
		run.Now.Year()+randutil.IntBetween(run.Rand, 1, 5),
		time.Month(randutil.IntBetween(run.Rand, 1, 12)),
		randutil.IntBetween(run.Rand, 1, 28),
		0, 0, 0, 0, time.UTC,
	)
}
