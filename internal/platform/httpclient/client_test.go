package httpclient_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/project-collector/internal/platform/config"
	"github.com/jsamuelsen11/project-collector/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-collector/internal/platform/logging"
	"github.com/jsamuelsen11/project-collector/internal/platform/telemetry"
)

const jsonType = "application/json"

func collectorConfig(endpoint string) *config.CollectorConfig {
	return &config.CollectorConfig{
		Endpoint: endpoint,
		Timeout:  5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func newClient(cfg *config.CollectorConfig) *httpclient.Client {
	return httpclient.New(cfg, "collector", nil, slog.New(slog.DiscardHandler))
}

// statusServer answers every request with status and counts hits.
func statusServer(t *testing.T, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func post(ctx context.Context, t *testing.T, c *httpclient.Client) error {
	t.Helper()

	resp, err := c.Post(ctx, jsonType, []byte(`{"title":"Atlas"}`))
	if resp != nil {
		_ = resp.Body.Close()
	}
	return err
}

func TestPost_DeliversPayload(t *testing.T) {
	t.Parallel()

	var gotMethod, gotType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	resp, err := newClient(collectorConfig(srv.URL)).Post(context.Background(), jsonType, []byte(`{"name":"Ada"}`))
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusAccepted)
	}
	if gotMethod != http.MethodPost || gotType != jsonType || gotBody != `{"name":"Ada"}` {
		t.Errorf("server saw %s %q %q", gotMethod, gotType, gotBody)
	}
}

func TestPost_SingleAttemptOnceAnswered(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusInternalServerError, http.StatusTooManyRequests, http.StatusBadRequest} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()
			srv, hits := statusServer(t, status)

			if err := post(context.Background(), t, newClient(collectorConfig(srv.URL))); err != nil {
				t.Fatalf("Post() error = %v, want nil without success requirement", err)
			}
			if got := hits.Load(); got != 1 {
				t.Errorf("attempts = %d, want 1", got)
			}
		})
	}
}

func TestPost_RequireSuccessStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  int
		wantErr bool
	}{
		{status: http.StatusOK},
		{status: http.StatusNoContent},
		{status: http.StatusNotFound, wantErr: true},
		{status: http.StatusServiceUnavailable, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()
			srv, _ := statusServer(t, tt.status)

			cfg := collectorConfig(srv.URL)
			cfg.RequireSuccessStatus = true

			resp, err := newClient(cfg).Post(context.Background(), jsonType, []byte(`{}`))
			if resp == nil {
				t.Fatalf("Post() resp = nil, err = %v", err)
			}
			_ = resp.Body.Close()

			var statusErr *httpclient.StatusError
			if got := errors.As(err, &statusErr); got != tt.wantErr {
				t.Fatalf("Post() error = %v, want StatusError %v", err, tt.wantErr)
			}
			if tt.wantErr && statusErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, tt.status)
			}
		})
	}
}

func TestPost_RetriesDialFailures(t *testing.T) {
	t.Parallel()

	// A closed listener refuses every connection.
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	resp, err := newClient(collectorConfig(endpoint)).Post(ctx, jsonType, []byte(`{}`))
	if resp != nil {
		_ = resp.Body.Close()
		t.Fatal("resp is non-nil, want nil on dial failure")
	}

	var opErr *net.OpError
	if !errors.As(err, &opErr) || opErr.Op != "dial" {
		t.Fatalf("Post() error = %v, want dial *net.OpError", err)
	}
	if got := strings.Count(buf.String(), "retrying delivery"); got != 2 {
		t.Errorf("retry warnings = %d, want 2", got)
	}
}

func TestPost_PropagatesRequestIDs(t *testing.T) {
	t.Parallel()

	var gotRequest, gotCorrelation string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequest = r.Header.Get("X-Request-ID")
		gotCorrelation = r.Header.Get("X-Correlation-ID")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := newClient(collectorConfig(srv.URL))

	ctx := httpclient.WithCorrelationID(httpclient.WithRequestID(context.Background(), "req-1"), "corr-1")
	if err := post(ctx, t, client); err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	if gotRequest != "req-1" || gotCorrelation != "corr-1" {
		t.Errorf("headers = %q/%q, want req-1/corr-1", gotRequest, gotCorrelation)
	}

	if err := post(context.Background(), t, client); err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	if gotRequest != "" || gotCorrelation != "" {
		t.Errorf("headers = %q/%q, want none without context IDs", gotRequest, gotCorrelation)
	}
}

func TestPost_BreakerLifecycle(t *testing.T) {
	t.Parallel()

	var failing atomic.Bool
	failing.Store(true)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		if failing.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := collectorConfig(srv.URL)
	cfg.RequireSuccessStatus = true
	cfg.CircuitBreaker.MaxFailures = 2
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	client := newClient(cfg)
	ctx := context.Background()

	if err := client.HealthCheck(ctx); err != nil {
		t.Fatalf("HealthCheck() = %v, want nil before failures", err)
	}

	for range 2 {
		_ = post(ctx, t, client)
	}

	if err := post(ctx, t, client); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Post() error = %v, want ErrOpenState", err)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("server hits = %d, want 2 (open breaker must not send)", got)
	}
	if err := client.HealthCheck(ctx); err == nil || !strings.Contains(err.Error(), "failing") {
		t.Errorf("HealthCheck() = %v, want failing", err)
	}

	time.Sleep(150 * time.Millisecond)
	if err := client.HealthCheck(ctx); err == nil || !strings.Contains(err.Error(), "degraded") {
		t.Errorf("HealthCheck() = %v, want degraded", err)
	}

	failing.Store(false)
	if err := post(ctx, t, client); err != nil {
		t.Fatalf("Post() error = %v, want recovery through half-open probe", err)
	}
	if err := client.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() = %v, want nil after recovery", err)
	}
}

func TestPost_ContextCanceled(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := post(ctx, t, newClient(collectorConfig(srv.URL))); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Post() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestPost_RateLimited(t *testing.T) {
	t.Parallel()

	srv, hits := statusServer(t, http.StatusOK)

	cfg := collectorConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.5, BurstSize: 1}
	client := newClient(cfg)

	if err := post(context.Background(), t, client); err != nil {
		t.Fatalf("first Post() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := post(ctx, t, client); err == nil {
		t.Fatal("second Post() error = nil, want rate limit wait failure")
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hits = %d, want 1", got)
	}
}

func TestPost_RecordsMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	srv, _ := statusServer(t, http.StatusOK)
	client := httpclient.New(collectorConfig(srv.URL), "collector", metrics, nil)

	if err := post(context.Background(), t, client); err != nil {
		t.Fatalf("Post() error = %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	sum, ok := findSum(rm, "http.client.request.total")
	if !ok || len(sum.DataPoints) != 1 {
		t.Fatalf("http.client.request.total = %+v, want one data point", sum)
	}
	point := sum.DataPoints[0]
	if point.Value != 1 {
		t.Errorf("count = %d, want 1", point.Value)
	}
	if v, _ := point.Attributes.Value(attribute.Key("result")); v.AsString() != "success" {
		t.Errorf("result = %q, want success", v.AsString())
	}
	if v, _ := point.Attributes.Value(attribute.Key("peer.service")); v.AsString() != "collector" {
		t.Errorf("peer.service = %q, want collector", v.AsString())
	}
}

func TestClient_Identity(t *testing.T) {
	t.Parallel()

	client := newClient(collectorConfig("http://collector.example/submissions"))
	if client.Name() != "collector" {
		t.Errorf("Name() = %q, want collector", client.Name())
	}
	if client.Endpoint() != "http://collector.example/submissions" {
		t.Errorf("Endpoint() = %q", client.Endpoint())
	}
}

func findSum(rm metricdata.ResourceMetrics, name string) (metricdata.Sum[int64], bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				sum, ok := m.Data.(metricdata.Sum[int64])
				return sum, ok
			}
		}
	}
	return metricdata.Sum[int64]{}, false
}
