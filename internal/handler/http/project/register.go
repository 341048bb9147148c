// Package project serves the /api/projects endpoints.
package project

import (
	"errors"
	"net/http"

	"highwaymetric/internal/domain/entity"
	"highwaymetric/internal/handler/http/respond"
	projectUC "highwaymetric/internal/usecase/project"
)

// Register registers all project handlers with the given mux.
func Register(mux *http.ServeMux, svc *projectUC.Service) {
	mux.Handle("GET /api/projects", ListHandler{svc})
	mux.Handle("POST /api/projects", CreateHandler{svc})
	mux.Handle("GET /api/projects/{id}", GetHandler{svc})
	mux.Handle("GET /api/projects/{id}/news", NewsHandler{svc})
	mux.Handle("DELETE /api/projects/{id}", DeleteHandler{svc})
}

// writeError reports a duplicate project name as a client error, not a conflict.
func writeError(w http.ResponseWriter, err error) {
	code := respond.StatusFor(err)
	if errors.Is(err, entity.ErrConflict) {
		code = http.StatusBadRequest
	}
	respond.WithStatus(w, code, err)
}
