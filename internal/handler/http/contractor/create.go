package contractor

import (
	"net/http"

	"highwaymetric/internal/handler/http/request"
	"highwaymetric/internal/handler/http/respond"
	contractorUC "highwaymetric/internal/usecase/contractor"
)

type CreateHandler struct{ Svc *contractorUC.Service }

// ServeHTTP creates a contractor
// @Summary      Create contractor
// @Description  Creates a contractor. Names are unique.
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Param        contractor body Input true "Contractor"
// @Success      200 {object} DTO
// @Failure      400 {object} map[string]string "Invalid body"
// @Failure      409 {object} map[string]string "Name already taken"
// @Failure      500 {object} map[string]string "Internal error"
// @Router       /api/contractors [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := request.DecodeJSON(r, &in); err != nil {
		respond.DomainError(w, err)
		return
	}

	c, err := h.Svc.Create(r.Context(), contractorUC.Input{Name: in.Name, Description: in.Description})
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(c))
}
