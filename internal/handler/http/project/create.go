package project

import (
	"fmt"
	"net/http"

	"highwaymetric/internal/handler/http/request"
	"highwaymetric/internal/handler/http/respond"
	projectUC "highwaymetric/internal/usecase/project"
)

type CreateHandler struct{ Svc *projectUC.Service }

// ServeHTTP adds a project
// @Summary      Add project
// @Description  Creates a project. The contractor and highways are looked up by name and number and created when missing.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project body Input true "Project"
// @Success      201 {object} map[string]string "Created, message holds the id"
// @Failure      400 {object} map[string]string "Duplicate name, bad date or bad status"
// @Failure      500 {object} map[string]string "Internal error"
// @Router       /api/projects [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := request.DecodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	id, err := h.Svc.AddNewProject(r.Context(), in.toUsecase())
	if err != nil {
		writeError(w, err)
		return
	}
	respond.Message(w, http.StatusCreated, fmt.Sprintf("Project created successfully with id: %s", id))
}
