package contractor

import (
	"net/http"

	"highwaymetric/internal/handler/http/pathutil"
	"highwaymetric/internal/handler/http/respond"
	contractorUC "highwaymetric/internal/usecase/contractor"
)

type GetHandler struct{ Svc *contractorUC.Service }

// ServeHTTP returns one contractor
// @Summary      Get contractor
// @Tags         contractors
// @Produce      json
// @Param        id path string true "Contractor ID" format(uuid)
// @Success      200 {object} DTO
// @Failure      404 "Not found"
// @Failure      500 {object} map[string]string "Internal error"
// @Router       /api/contractors/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// An id that is not a UUID cannot exist.
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Empty(w, http.StatusNotFound)
		return
	}

	c, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(c))
}
