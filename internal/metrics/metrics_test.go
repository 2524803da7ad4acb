package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/evensplit/internal/calculator"
)

func TestResult(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{&calculator.ValidationError{Field: "amount"}, "invalid"},
		{fmt.Errorf("wrapped: %w", &calculator.UnbalancedLedgerError{Sum: 3}), "unbalanced"},
		{&calculator.RoundingOverflowError{}, "overflow"},
		{errors.New("db down"), "error"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Result(tt.err); got != tt.want {
				t.Errorf("Result(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestObserveSettlement(t *testing.T) {
	m := New()

	m.ObserveSettlement(SourceRPC, time.Now(), 2, nil)
	m.ObserveSettlement(SourceRPC, time.Now(), 0, &calculator.ValidationError{})
	m.ObserveSettlement(SourceREST, time.Now(), 1, nil)

	if got := testutil.ToFloat64(m.settlements.WithLabelValues(SourceRPC, "ok")); got != 1 {
		t.Errorf("rpc ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.settlements.WithLabelValues(SourceRPC, "invalid")); got != 1 {
		t.Errorf("rpc invalid = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.planTransfers); got != 1 {
		t.Errorf("plan histogram series = %d, want 1", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveSettlement(SourceRPC, time.Now(), 1, nil)
	m.ObservePublish("created", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("nil handler status = %d, want 404", rec.Code)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObservePublish("created", errors.New("broker down"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `evensplit_events_published_total{action="created",result="error"} 1`) {
		t.Errorf("missing publish counter in:\n%s", body)
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Error("missing Go runtime collector")
	}
}
