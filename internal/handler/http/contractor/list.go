package contractor

import (
	"net/http"

	"highwaymetric/internal/handler/http/respond"
	contractorUC "highwaymetric/internal/usecase/contractor"
)

type ListHandler struct{ Svc *contractorUC.Service }

// ServeHTTP lists contractors
// @Summary      List contractors
// @Tags         contractors
// @Produce      json
// @Success      200 {array} DTO
// @Failure      500 {object} map[string]string "Internal error"
// @Router       /api/contractors [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, c := range list {
		out = append(out, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, out)
}
