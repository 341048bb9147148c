package highway

import (
	"net/http"

	"highwaymetric/internal/handler/http/news"
	"highwaymetric/internal/handler/http/pathutil"
	"highwaymetric/internal/handler/http/respond"
	highwayUC "highwaymetric/internal/usecase/highway"
)

type GetHandler struct{ Svc *highwayUC.Service }

// ServeHTTP returns one highway
// @Summary      Get highway
// @Tags         highways
// @Produce      json
// @Param        id path string true "Highway ID" format(uuid)
// @Success      200 {object} DTO
// @Failure      404 "Not found"
// @Failure      500 {object} map[string]string "Internal error"
// @Router       /api/highways/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Empty(w, http.StatusNotFound)
		return
	}

	hw, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(hw))
}

type NewsHandler struct{ Svc *highwayUC.Service }

// ServeHTTP lists the news of a highway
// @Summary      Highway news
// @Tags         highways
// @Produce      json
// @Param        id path string true "Highway ID" format(uuid)
// @Success      200 {array} news.DTO
// @Failure      404 "Not found"
// @Failure      500 {object} map[string]string "Internal error"
// @Router       /api/highways/{id}/news [get]
func (h NewsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Empty(w, http.StatusNotFound)
		return
	}

	articles, err := h.Svc.ListNews(r.Context(), id)
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, news.FromEntities(articles))
}
