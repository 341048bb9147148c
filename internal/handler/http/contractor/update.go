package contractor

import (
	"net/http"

	"highwaymetric/internal/handler/http/pathutil"
	"highwaymetric/internal/handler/http/request"
	"highwaymetric/internal/handler/http/respond"
	contractorUC "highwaymetric/internal/usecase/contractor"
)

type UpdateHandler struct{ Svc *contractorUC.Service }

// ServeHTTP overwrites a contractor
// @Summary      Update contractor
// @Description  Overwrites name and description.
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Param        id path string true "Contractor ID" format(uuid)
// @Param        contractor body Input true "Contractor"
// @Success      200 {object} DTO
// @Failure      400 {object} map[string]string "Invalid body"
// @Failure      404 "Not found"
// @Failure      409 {object} map[string]string "Name already taken"
// @Failure      500 {object} map[string]string "Internal error"
// @Router       /api/contractors/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Empty(w, http.StatusNotFound)
		return
	}

	var in Input
	if err := request.DecodeJSON(r, &in); err != nil {
		respond.DomainError(w, err)
		return
	}

	c, err := h.Svc.Update(r.Context(), id, contractorUC.Input{Name: in.Name, Description: in.Description})
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(c))
}
