// Package metrics exposes business and HTTP counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "mtm"

// Recorder implements service.Metrics on a dedicated registry.
type Recorder struct {
	registry *prometheus.Registry

	httpRequestsTotal     *prometheus.CounterVec
	httpResponseTime      *prometheus.HistogramVec
	ordersTotal           prometheus.Counter
	orderRevenue          prometheus.Counter
	paymentFailuresTotal  prometheus.Counter
	commissionsTotal      prometheus.Counter
	commissionTransitions *prometheus.CounterVec
	syncPassesTotal       *prometheus.CounterVec
	syncAccounts          *prometheus.CounterVec
	syncTrades            *prometheus.CounterVec
	storeWriteFailures    *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpResponseTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_response_time_seconds",
				Help:      "Histogram of response times",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		ordersTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_completed_total",
			Help:      "Checkouts that reached confirmation",
		}),
		orderRevenue: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_revenue_total",
			Help:      "Sum of confirmed order totals",
		}),
		paymentFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_failures_total",
			Help:      "Charges refused by the payment gateway",
		}),
		commissionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commissions_recorded_total",
			Help:      "Commissions added to the ledger",
		}),
		commissionTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commission_transitions_total",
				Help:      "Applied commission status transitions by target status",
			},
			[]string{"status"},
		),
		syncPassesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "copytrading_sync_passes_total",
				Help:      "Copytrading sync passes by result",
			},
			[]string{"result"},
		),
		syncAccounts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "copytrading_sync_accounts_total",
				Help:      "Pending accounts resolved by sync passes",
			},
			[]string{"outcome"},
		),
		syncTrades: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "copytrading_sync_trades_total",
				Help:      "Simulated trades opened or closed by sync passes",
			},
			[]string{"action"},
		),
		storeWriteFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_write_failures_total",
				Help:      "Documents that could not be persisted",
			},
			[]string{"key"},
		),
	}
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveHTTPRequest records one served request. path must be the route template.
func (r *Recorder) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	r.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.httpResponseTime.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func (r *Recorder) OrderCompleted(total float64) {
	r.ordersTotal.Inc()
	if total > 0 {
		r.orderRevenue.Add(total)
	}
}

func (r *Recorder) PaymentFailed() {
	r.paymentFailuresTotal.Inc()
}

func (r *Recorder) CommissionRecorded() {
	r.commissionsTotal.Inc()
}

func (r *Recorder) CommissionStatusChanged(status string) {
	r.commissionTransitions.WithLabelValues(status).Inc()
}

func (r *Recorder) SyncCompleted(promoted, failed, opened, closed int, failedPass bool) {
	result := "ok"
	if failedPass {
		result = "error"
	}
	r.syncPassesTotal.WithLabelValues(result).Inc()
	r.syncAccounts.WithLabelValues("promoted").Add(float64(promoted))
	r.syncAccounts.WithLabelValues("failed").Add(float64(failed))
	r.syncTrades.WithLabelValues("opened").Add(float64(opened))
	r.syncTrades.WithLabelValues("closed").Add(float64(closed))
}

func (r *Recorder) StoreWriteFailed(key string) {
	r.storeWriteFailures.WithLabelValues(key).Inc()
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		func(r *Recorder) service.Metrics { return r },
	),
)
