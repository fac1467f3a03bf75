package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOperation   = attribute.Key("operation")
)

const meterName = "github.com/jsamuelsen11/project-collector"

// Metrics holds the service's instruments.
type Metrics struct {
	// Inbound API requests, labeled by method, route, status and result.
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter

	// Collector deliveries, labeled by method, status, peer and result.
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// Whole submission attempts including the timeout race, labeled by result.
	SubmissionDuration metric.Float64Histogram
	SubmissionTotal    metric.Int64Counter

	// Durable slot writes, labeled by operation (save, clear) and result.
	DraftWriteTotal metric.Int64Counter
}

// NewMetrics registers every instrument on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	r := registrar{meter: mp.Meter(meterName)}
	m := &Metrics{
		ServerRequestDuration: r.seconds("http.server.request.duration", "Duration of inbound API requests"),
		ServerRequestTotal:    r.count("http.server.request.total", "{request}", "Inbound API requests"),
		ClientRequestDuration: r.seconds("http.client.request.duration", "Duration of collector deliveries"),
		ClientRequestTotal:    r.count("http.client.request.total", "{request}", "Collector deliveries"),
		SubmissionDuration:    r.seconds("collector.submission.duration", "Duration of submission attempts"),
		SubmissionTotal:       r.count("collector.submission.total", "{submission}", "Submission attempts"),
		DraftWriteTotal:       r.count("collector.draft.write.total", "{write}", "Draft slot writes"),
	}
	if r.err != nil {
		return nil, r.err
	}
	return m, nil
}

// registrar creates instruments and keeps the first failure.
type registrar struct {
	meter metric.Meter
	err   error
}

func (r *registrar) seconds(name, desc string) metric.Float64Histogram {
	h, err := r.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	r.keep(name, err)
	return h
}

func (r *registrar) count(name, unit, desc string) metric.Int64Counter {
	c, err := r.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	r.keep(name, err)
	return c
}

func (r *registrar) keep(name string, err error) {
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("creating %s: %w", name, err)
	}
}
