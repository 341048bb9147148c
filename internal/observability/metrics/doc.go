// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Business metrics (projects created or rejected, shell entities)
//   - Database transaction and pool metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "highwaymetric/internal/observability/metrics"
//
//	func createHighway() {
//	    // ... insert highway ...
//	    metrics.RecordShellEntityCreated(metrics.EntityHighway)
//	}
package metrics
