package highway

import (
	"net/http"

	"highwaymetric/internal/handler/http/respond"
	highwayUC "highwaymetric/internal/usecase/highway"
)

type SummaryHandler struct{ Svc *highwayUC.Service }

// ServeHTTP aggregates the highway portfolio
// @Summary      Highway summary
// @Description  Totals of budget, actual cost and reworks over all highways.
// @Tags         highways
// @Produce      json
// @Success      200 {object} SummaryDTO
// @Failure      500 {object} map[string]string "Internal error"
// @Router       /api/highways/summary [get]
func (h SummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sum, err := h.Svc.Summary(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, SummaryDTO{
		TotalHighways:        sum.TotalHighways,
		TotalEstimatedBudget: sum.TotalEstimatedBudget,
		TotalActualCost:      sum.TotalActualCost,
		TotalReworks:         sum.TotalReworks,
	})
}
