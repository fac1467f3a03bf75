package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"time"
)

// Storage driver names.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// problems collects every rule a Config breaks, so one run reports them all.
type problems []error

func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) positive(key string, d time.Duration) {
	p.require(d > 0, "%s must be positive, got %s", key, d)
}

func (p *problems) oneOf(key, value string, allowed []string) {
	p.require(slices.Contains(allowed, value), "%s must be one of %v, got %q", key, allowed, value)
}

// Validate reports every invalid setting, joined.
func (c *Config) Validate() error {
	var p problems

	p.require(c.Server.Port >= 1 && c.Server.Port <= 65535, "server.port must be in 1..65535, got %d", c.Server.Port)
	p.positive("server.read_timeout", c.Server.ReadTimeout)
	p.positive("server.write_timeout", c.Server.WriteTimeout)
	p.positive("server.request_timeout", c.Server.RequestTimeout)

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	c.Collector.check(&p)

	p.positive("form.submit_timeout", c.Form.SubmitTimeout)
	p.require(c.Form.Slot != "", "form.slot must not be empty")

	// A submission has to settle inside the request that triggered it.
	if c.Server.RequestTimeout > 0 && c.Form.SubmitTimeout > 0 {
		p.require(c.Server.RequestTimeout > c.Form.SubmitTimeout,
			"server.request_timeout (%s) must exceed form.submit_timeout (%s)",
			c.Server.RequestTimeout, c.Form.SubmitTimeout)
	}

	p.oneOf("storage.driver", c.Storage.Driver, []string{StorageFile, StorageSQLite, StorageMemory})
	if c.Storage.Driver == StorageFile || c.Storage.Driver == StorageSQLite {
		p.require(c.Storage.Path != "", "storage.path must not be empty for driver %q", c.Storage.Driver)
	}

	if c.Telemetry.Enabled {
		p.oneOf("telemetry.exporter", c.Telemetry.Exporter, exporters)
		p.require(c.Telemetry.Exporter != "otlp" || c.Telemetry.Endpoint != "",
			"telemetry.endpoint must not be empty for the otlp exporter")
	}

	return errors.Join(p...)
}

func (cl *CollectorConfig) check(p *problems) {
	u, err := url.Parse(cl.Endpoint)
	p.require(err == nil && u.Host != "" && (u.Scheme == "http" || u.Scheme == "https"),
		"collector.endpoint must be an absolute http(s) URL, got %q", cl.Endpoint)
	p.positive("collector.timeout", cl.Timeout)

	p.require(cl.Retry.MaxAttempts >= 1, "collector.retry.max_attempts must be at least 1, got %d", cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, "collector.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)

	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		"collector.circuit_breaker.max_failures must be at least 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.require(rl.RequestsPerSecond >= 0,
		"collector.rate_limit.requests_per_second must not be negative, got %g", rl.RequestsPerSecond)
	p.require(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"collector.rate_limit.burst_size must be at least 1 when limiting, got %d", rl.BurstSize)
}
