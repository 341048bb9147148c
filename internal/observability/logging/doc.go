// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package. The server logs
// JSON to stdout; handlers pick up a request-scoped logger carrying the
// request ID through FromContext.
//
// Example usage:
//
//	logger := logging.NewLogger(cfg.LogLevel)
//	slog.SetDefault(logger)
//
//	func handle(ctx context.Context) {
//	    logging.FromContext(ctx).Info("processing request")
//	}
package logging
