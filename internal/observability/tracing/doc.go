// Package tracing provides OpenTelemetry tracing integration.
//
// NewProvider installs an SDK tracer provider and the W3C trace-context
// propagator as process globals. Middleware starts a server span per request,
// and the use-case layer opens child spans through Tracer.
//
// Example usage:
//
//	tp := tracing.NewProvider("highwaymetric", version)
//	defer func() { _ = tp.Shutdown(context.Background()) }()
//
//	ctx, span := tracing.Tracer().Start(ctx, "project.AddNewProject")
//	defer span.End()
package tracing
