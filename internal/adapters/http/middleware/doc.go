// Package middleware holds the inbound HTTP pipeline wrapped around the form
// API. cmd/server installs it outermost first:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout
//
// Logging and OpenTelemetry run inside the chi router's Use chain, so both
// see the matched route pattern once the handler returns.
package middleware
