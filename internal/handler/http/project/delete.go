package project

import (
	"fmt"
	"net/http"

	"highwaymetric/internal/handler/http/pathutil"
	"highwaymetric/internal/handler/http/respond"
	projectUC "highwaymetric/internal/usecase/project"
)

type DeleteHandler struct{ Svc *projectUC.Service }

// ServeHTTP removes a project
// @Summary      Remove project
// @Description  Deletes a project with its news articles. Removing an unknown id succeeds.
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string "Malformed id"
// @Failure      500 {object} map[string]string "Internal error"
// @Router       /api/projects/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	removed, err := h.Svc.Remove(r.Context(), id)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	if !removed {
		respond.Message(w, http.StatusOK, fmt.Sprintf("No project with id: %s, nothing to remove", id))
		return
	}
	respond.Message(w, http.StatusOK, fmt.Sprintf("Project with id: %s removed successfully", id))
}
