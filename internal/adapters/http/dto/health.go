package dto

// Probe statuses.
const (
	HealthAlive    = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of both probes. Checks is present on readiness
// only and maps each dependency to "ok" or its failure.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadiness summarizes per-dependency results. It reports false when any
// dependency failed.
func ToReadiness(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	ready := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			ready = false
			continue
		}
		resp.Checks[name] = HealthAlive
	}
	if !ready {
		resp.Status = HealthNotReady
	}
	return resp, ready
}
