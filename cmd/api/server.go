package main

import (
	"database/sql"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"highwaymetric/internal/config"
	hhttp "highwaymetric/internal/handler/http"
	hcontractor "highwaymetric/internal/handler/http/contractor"
	hhighway "highwaymetric/internal/handler/http/highway"
	hproject "highwaymetric/internal/handler/http/project"
	"highwaymetric/internal/handler/http/requestid"
	"highwaymetric/internal/observability/tracing"
	"highwaymetric/internal/resilience/circuitbreaker"
	contractorUC "highwaymetric/internal/usecase/contractor"
	highwayUC "highwaymetric/internal/usecase/highway"
	projectUC "highwaymetric/internal/usecase/project"
)

// app holds what the routes need.
type app struct {
	contractors *contractorUC.Service
	projects    *projectUC.Service
	highways    *highwayUC.Service
	db          *sql.DB
	breaker     *circuitbreaker.CircuitBreaker
	version     string
}

func (a app) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: a.db, Breaker: a.breaker, Version: a.version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: a.db})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	hcontractor.Register(mux, a.contractors)
	hproject.Register(mux, a.projects)
	hhighway.Register(mux, a.highways)
	return mux
}

// applyMiddleware wraps the handler with the middleware chain, outermost first:
// request ID, tracing, logging, recovery, metrics, rate limit, body limit.
func applyMiddleware(logger *slog.Logger, cfg *config.Config, h http.Handler) (http.Handler, error) {
	mws := []func(http.Handler) http.Handler{
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		hhttp.MetricsMiddleware,
	}
	if cfg.RateLimitEnabled {
		proxies, err := cfg.TrustedProxyPrefixes()
		if err != nil {
			return nil, err
		}
		mws = append(mws, hhttp.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, proxies...).Limit)
		logger.Info("rate limiting enabled",
			slog.Float64("rps", cfg.RateLimitRPS),
			slog.Int("burst", cfg.RateLimitBurst),
			slog.Int("trusted_proxies", len(proxies)))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}
	mws = append(mws, hhttp.LimitRequestBody(cfg.RequestBodyLimit))

	return hhttp.Chain(h, mws...), nil
}
