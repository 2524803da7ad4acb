// Package metrics exposes Prometheus collectors for settlement computations,
// RPC traffic and event publishing.
//
// A nil *Metrics is valid and records nothing, so callers never need to
// check whether metrics are enabled.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/evensplit/internal/calculator"
)

const namespace = "evensplit"

// Settlement sources.
const (
	SourceRPC     = "rpc"
	SourceREST    = "rest"
	SourceAuditor = "auditor"
)

// Metrics holds the service's collectors and the registry they live in.
type Metrics struct {
	registry *prometheus.Registry

	settlements        *prometheus.CounterVec
	settlementDuration *prometheus.HistogramVec
	planTransfers      prometheus.Histogram
	rpcRequests        *prometheus.CounterVec
	eventsPublished    *prometheus.CounterVec
}

// New creates the collectors on a fresh registry, including Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Settlement computations by source and result.",
		}, []string{"source", "result"}),
		settlementDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_duration_seconds",
			Help:      "Time spent computing balances and a settlement plan.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"source"}),
		planTransfers: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_plan_transfers",
			Help:      "Number of transfers in successful settlement plans.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Connect RPCs by procedure and code.",
		}, []string{"procedure", "code"}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Expense change events by action and result.",
		}, []string{"action", "result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.settlements,
		m.settlementDuration,
		m.planTransfers,
		m.rpcRequests,
		m.eventsPublished,
	)
	return m
}

// Registry returns the registry backing these metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveSettlement records one settlement computation that began at start.
func (m *Metrics) ObserveSettlement(source string, start time.Time, transfers int, err error) {
	if m == nil {
		return
	}
	m.settlementDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	m.settlements.WithLabelValues(source, Result(err)).Inc()
	if err == nil {
		m.planTransfers.Observe(float64(transfers))
	}
}

// ObservePublish records the outcome of publishing one event.
func (m *Metrics) ObservePublish(action string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.eventsPublished.WithLabelValues(action, result).Inc()
}

// Result classifies a settlement error into a metric label.
func Result(err error) string {
	var (
		validation *calculator.ValidationError
		unbalanced *calculator.UnbalancedLedgerError
		overflow   *calculator.RoundingOverflowError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &validation):
		return "invalid"
	case errors.As(err, &unbalanced):
		return "unbalanced"
	case errors.As(err, &overflow):
		return "overflow"
	default:
		return "error"
	}
}

// Interceptor counts every unary RPC by procedure and resulting code.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			resp, err := next(ctx, req)
			if m != nil {
				code := "ok"
				if err != nil {
					code = connect.CodeOf(err).String()
				}
				m.rpcRequests.WithLabelValues(req.Spec().Procedure, code).Inc()
			}
			return resp, err
		}
	}
}
