package project

import (
	"net/http"

	"highwaymetric/internal/handler/http/respond"
	projectUC "highwaymetric/internal/usecase/project"
)

type ListHandler struct{ Svc *projectUC.Service }

// ServeHTTP lists projects
// @Summary      List projects
// @Description  Lists every project with its highway ids and contractor name.
// @Tags         projects
// @Produce      json
// @Success      200 {array} DTO
// @Failure      500 {object} map[string]string "Internal error"
// @Router       /api/projects [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, p := range list {
		out = append(out, toDTO(p))
	}
	respond.JSON(w, http.StatusOK, out)
}
