package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Checkout outcomes used as the "result" label.
const (
	ResultSuccess = "success"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// Metrics groups the Prometheus collectors of the API.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	CheckoutsTotal  *prometheus.CounterVec
	DiscountsTotal  *prometheus.CounterVec
	ReceiptTotal    prometheus.Histogram
}

// New creates the collectors and registers them with reg, or with the
// default registerer when reg is nil. Collectors already registered under
// the same name are reused.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled by the server.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency distribution in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"method", "route"}),
		CheckoutsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkouts_total",
			Help:      "Count of checkouts by outcome.",
		}, []string{"result"}),
		DiscountsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discounts_applied_total",
			Help:      "Count of discounts written to receipts by offer type.",
		}, []string{"offer_type"}),
		ReceiptTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "receipt_total",
			Help:      "Distribution of receipt totals.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
	}

	mustRegisterCollector(reg, m.RequestsTotal, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.RequestsTotal = v
		}
	})
	mustRegisterCollector(reg, m.RequestDuration, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.HistogramVec); ok {
			m.RequestDuration = v
		}
	})
	mustRegisterCollector(reg, m.CheckoutsTotal, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.CheckoutsTotal = v
		}
	})
	mustRegisterCollector(reg, m.DiscountsTotal, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.DiscountsTotal = v
		}
	})
	mustRegisterCollector(reg, m.ReceiptTotal, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Histogram); ok {
			m.ReceiptTotal = v
		}
	})

	return m
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, fmt.Sprintf("%d", status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(DurationMillis(d))
}

// ObserveCheckout records a checkout outcome. The total is only observed
// for successful checkouts.
func (m *Metrics) ObserveCheckout(result string, total float64) {
	m.CheckoutsTotal.WithLabelValues(result).Inc()
	if result == ResultSuccess {
		m.ReceiptTotal.Observe(total)
	}
}

// ObserveDiscount records one discount line of the given offer type.
func (m *Metrics) ObserveDiscount(offerType string) {
	m.DiscountsTotal.WithLabelValues(offerType).Inc()
}

// DurationMillis converts a duration to milliseconds for metric observation.
func DurationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register metric: %w", err))
	}
}
