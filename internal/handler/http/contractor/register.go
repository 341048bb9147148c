// Package contractor serves the /api/contractors endpoints.
package contractor

import (
	"net/http"

	contractorUC "highwaymetric/internal/usecase/contractor"
)

// Register registers all contractor handlers with the given mux.
func Register(mux *http.ServeMux, svc *contractorUC.Service) {
	mux.Handle("GET /api/contractors", ListHandler{svc})
	mux.Handle("POST /api/contractors", CreateHandler{svc})
	mux.Handle("GET /api/contractors/{id}", GetHandler{svc})
	mux.Handle("PUT /api/contractors/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /api/contractors/{id}", DeleteHandler{svc})
}
