package project

import (
	"net/http"

	"highwaymetric/internal/handler/http/news"
	"highwaymetric/internal/handler/http/pathutil"
	"highwaymetric/internal/handler/http/respond"
	projectUC "highwaymetric/internal/usecase/project"
)

type GetHandler struct{ Svc *projectUC.Service }

// ServeHTTP returns one project
// @Summary      Get project
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} DTO
// @Failure      404 "Not found"
// @Failure      500 {object} map[string]string "Internal error"
// @Router       /api/projects/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Empty(w, http.StatusNotFound)
		return
	}

	p, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(*p))
}

type NewsHandler struct{ Svc *projectUC.Service }

// ServeHTTP lists the news of a project
// @Summary      Project news
// @Description  News articles about a project, newest first.
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {array} news.DTO
// @Failure      404 "Not found"
// @Failure      500 {object} map[string]string "Internal error"
// @Router       /api/projects/{id}/news [get]
func (h NewsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Empty(w, http.StatusNotFound)
		return
	}

	articles, err := h.Svc.ListNews(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, news.FromEntities(articles))
}
