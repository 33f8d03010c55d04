package payment

import (
	"encoding/hex"
	"math/rand"
	"time"

	"github.com/eduardoconde-bit/spotify-database/internal/dataset"
	"github.com/eduardoconde-bit/spotify-database/internal/pipeline"
	"github.com/eduardoconde-bit/spotify-database/internal/randutil"
	"github.com/google/uuid"
)

// maxOrdersPerSubscription caps the simulated history so long-lived
// subscriptions do not dominate the orders table.
const maxOrdersPerSubscription = 6

var (
	orderStatuses = []dataset.OrderStatus{
		dataset.OrderStatusPending,
		dataset.OrderStatusCompleted,
		dataset.OrderStatusFailed,
		dataset.OrderStatusRefunded,
	}
	orderStatusWeights = []float64{0.03, 0.95, 0.015, 0.005}
)

// BillingSimulator replays the monthly billing cycle of a subscription and
// emits one order per elapsed cycle.
type BillingSimulator struct{}

func NewBillingSimulator() *BillingSimulator { return &BillingSimulator{} }

// EmitOrders walks month by month from the subscription start to its finish
// date, or to now for live subscriptions. Free plans and owners without a
// payment method produce no orders.
func (b *BillingSimulator) EmitOrders(run *pipeline.Run, sub dataset.Subscription, plan dataset.Plan, methods []dataset.PaymentMethod) []dataset.Order {
	if plan.Price == 0 || len(methods) == 0 {
		return nil
	}
	method := randutil.Choice(run.Rand, methods)

	end := run.Now
	if sub.DateFinish != nil {
		end = *sub.DateFinish
	}

	var orders []dataset.Order
	for cursor := sub.DateStart; !cursor.After(end) && len(orders) < maxOrdersPerSubscription; cursor = AddMonths(cursor, 1) {
		orders = append(orders, dataset.Order{
			OrderID:       run.NextID(dataset.TableOrders),
			UserID:        sub.OwnerID,
			PlanID:        plan.PlanID,
			MethodID:      method.MethodID,
			Amount:        plan.Price,
			Status:        orderStatuses[randutil.WeightedIndex(run.Rand, orderStatusWeights)],
			TransactionID: transactionCode(),
			CreatedAt:     withRandomClock(run.Rand, cursor),
		})
	}
	return orders
}

// AddMonths advances a date by whole calendar months, clamping the day to the
// last day of the target month so January 31 plus one month lands on
// February 28 or 29, never March.
func AddMonths(t time.Time, months int) time.Time {
	m := int(t.Month()) - 1 + months
	year := t.Year() + m/12
	month := time.Month(m%12 + 1)
	day := t.Day()
	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func withRandomClock(r *rand.Rand, day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		r.Intn(24), r.Intn(60), r.Intn(60), 0, time.UTC)
}

func transactionCode() string {
	return "txn_" + rawHex(24)
}

// rawHex returns the first n hex characters of a fresh random uuid.
func rawHex(n int) string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:n]
}
