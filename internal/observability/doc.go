// Package observability groups the logging, metrics and tracing support of the
// highway metrics service.
//
// Subpackages:
//   - logging: slog JSON logger with request-scoped fields
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracer provider and HTTP middleware
package observability
