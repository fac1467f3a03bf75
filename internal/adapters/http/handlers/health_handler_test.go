package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/project-collector/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-collector/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-collector/mocks"
)

func TestLiveness(t *testing.T) {
	t.Parallel()

	// No expectations: liveness must not consult the registry.
	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	expectStatus(t, rec, http.StatusOK)
	if got := decodeBody[dto.HealthResponse](t, rec); got.Status != dto.HealthAlive || got.Checks != nil {
		t.Errorf("body = %+v, want status ok without checks", got)
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "all dependencies pass",
			results:    map[string]error{"collector": nil, "drafts": nil},
			wantCode:   http.StatusOK,
			wantStatus: dto.HealthReady,
			wantChecks: map[string]string{"collector": "ok", "drafts": "ok"},
		},
		{
			name:       "breaker open",
			results:    map[string]error{"collector": errors.New("circuit breaker collector: failing"), "drafts": nil},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: dto.HealthNotReady,
			wantChecks: map[string]string{"collector": "circuit breaker collector: failing", "drafts": "ok"},
		},
		{
			name:       "nothing registered",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: dto.HealthReady,
			wantChecks: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry).Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			expectStatus(t, rec, tt.wantCode)
			got := decodeBody[dto.HealthResponse](t, rec)
			if got.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", got.Status, tt.wantStatus)
			}
			if len(got.Checks) != len(tt.wantChecks) {
				t.Fatalf("checks = %v, want %v", got.Checks, tt.wantChecks)
			}
			for name, want := range tt.wantChecks {
				if got.Checks[name] != want {
					t.Errorf("checks[%s] = %q, want %q", name, got.Checks[name], want)
				}
			}
		})
	}
}
