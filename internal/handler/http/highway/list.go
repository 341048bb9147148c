package highway

import (
	"net/http"

	"highwaymetric/internal/handler/http/respond"
	highwayUC "highwaymetric/internal/usecase/highway"
)

type ListHandler struct{ Svc *highwayUC.Service }

// ServeHTTP lists highways
// @Summary      List highways
// @Description  Lists highways ordered by number, optionally filtered by status.
// @Tags         highways
// @Produce      json
// @Param        status query string false "Status filter" Enums(PLANNING, CONSTRUCTION, COMPLETED, MAINTENANCE)
// @Success      200 {array} DTO
// @Failure      400 {object} map[string]string "Unknown status"
// @Failure      500 {object} map[string]string "Internal error"
// @Router       /api/highways [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, hw := range list {
		out = append(out, toDTO(hw))
	}
	respond.JSON(w, http.StatusOK, out)
}
