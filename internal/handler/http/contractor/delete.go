package contractor

import (
	"net/http"

	"highwaymetric/internal/handler/http/pathutil"
	"highwaymetric/internal/handler/http/respond"
	contractorUC "highwaymetric/internal/usecase/contractor"
)

type DeleteHandler struct{ Svc *contractorUC.Service }

// ServeHTTP deletes a contractor
// @Summary      Delete contractor
// @Description  Deletes a contractor. Its projects stay and lose their contractor.
// @Tags         contractors
// @Param        id path string true "Contractor ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 "Not found"
// @Failure      500 {object} map[string]string "Internal error"
// @Router       /api/contractors/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Empty(w, http.StatusNotFound)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.Empty(w, http.StatusNoContent)
}
