package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	// DefaultSlot matches the key the browser form used for its draft.
	DefaultSlot = "projectCollectorFormData"
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "30s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"collector.endpoint":                        "",
		"collector.timeout":                         "10s",
		"collector.require_success_status":          false,
		"collector.retry.max_attempts":              defaultRetryMaxAttempts,
		"collector.retry.initial_interval":          "100ms",
		"collector.retry.max_interval":              "2s",
		"collector.retry.multiplier":                defaultRetryMultiplier,
		"collector.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"collector.circuit_breaker.timeout":         "30s",
		"collector.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"collector.rate_limit.requests_per_second":  0,
		"collector.rate_limit.burst_size":           1,

		"form.submit_timeout": "10s",
		"form.slot":           DefaultSlot,

		"storage.driver": "file",
		"storage.path":   ".collector",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "project-collector",
	}
}
