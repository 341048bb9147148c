// Package highway serves the read-only /api/highways endpoints.
package highway

import (
	"net/http"

	highwayUC "highwaymetric/internal/usecase/highway"
)

// Register registers all highway handlers with the given mux.
// The summary route is more specific than {id}, so ServeMux prefers it.
func Register(mux *http.ServeMux, svc *highwayUC.Service) {
	mux.Handle("GET /api/highways", ListHandler{svc})
	mux.Handle("GET /api/highways/summary", SummaryHandler{svc})
	mux.Handle("GET /api/highways/{id}", GetHandler{svc})
	mux.Handle("GET /api/highways/{id}/news", NewsHandler{svc})
}
