package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// CheckoutTotal counts checkout outcomes.
	CheckoutTotal *prometheus.CounterVec
	// CheckoutAmount records receipt totals for completed checkouts.
	CheckoutAmount prometheus.Histogram
	// DiscountAmount records the discount value granted per checkout.
	DiscountAmount prometheus.Histogram
	// LoyaltyPointsUsed accumulates the monetary value of points spent as payment.
	LoyaltyPointsUsed prometheus.Counter
	// LoyaltyPointsEarned accumulates points accrued on loyalty cards.
	LoyaltyPointsEarned prometheus.Counter
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		CheckoutTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_total",
			Help:      "Count of checkout outcomes.",
		}, []string{"result"})
		CheckoutAmount = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "checkout_amount",
			Help:      "Receipt totals for completed checkouts.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
		})
		DiscountAmount = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "checkout_discount_amount",
			Help:      "Discount value granted per checkout.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 25, 50},
		})
		LoyaltyPointsUsed = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loyalty_points_used_total",
			Help:      "Monetary value of loyalty points spent as payment.",
		})
		LoyaltyPointsEarned = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loyalty_points_earned_total",
			Help:      "Loyalty points accrued across checkouts.",
		})

		registerOrReuse(reg, CheckoutTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				CheckoutTotal = v
			}
		})
		registerOrReuse(reg, CheckoutAmount, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Histogram); ok {
				CheckoutAmount = v
			}
		})
		registerOrReuse(reg, DiscountAmount, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Histogram); ok {
				DiscountAmount = v
			}
		})
		registerOrReuse(reg, LoyaltyPointsUsed, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				LoyaltyPointsUsed = v
			}
		})
		registerOrReuse(reg, LoyaltyPointsEarned, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				LoyaltyPointsEarned = v
			}
		})
	})
}
