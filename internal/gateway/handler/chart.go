package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"astroguide/internal/chart"
	"astroguide/internal/gateway/entity"
	artifactrepo "astroguide/internal/gateway/repository/artifact"
)

type chartEntry struct {
	File string `json:"file"`
	URL  string `json:"url"`
}

// UserCharts lists every stored chart rendered for the user's name, oldest
// first.
func (h *Handler) UserCharts(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userIDParam(w, r)
	if !ok {
		return
	}
	p, err := h.chat.Profile(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	charts := []chartEntry{}
	if h.charts != nil {
		files, err := h.charts.List(r.Context(), chart.Namespace)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		for _, file := range files {
			if chart.IsFileOf(p.Name, file) {
				charts = append(charts, chartEntry{File: file, URL: "/" + chart.Namespace + "/" + url.PathEscape(file)})
			}
		}
	}
	writeJSON(w, http.StatusOK, struct {
		UserID entity.UserID `json:"userId"`
		Charts []chartEntry  `json:"charts"`
	}{id, charts})
}

// Chart serves a stored chart. Backends that can presign a URL get a redirect;
// the rest are streamed from the store.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	if h.charts == nil {
		writeMessage(w, http.StatusNotFound, "Chart not found")
		return
	}
	link, err := h.charts.GetURL(r.Context(), chart.Namespace, file)
	if err != nil {
		h.chartError(w, r, file, err)
		return
	}
	if link != "" {
		http.Redirect(w, r, link, http.StatusFound)
		return
	}
	raw, err := h.charts.Get(r.Context(), chart.Namespace, file)
	if err != nil {
		h.chartError(w, r, file, err)
		return
	}
	w.Header().Set("Content-Type", artifactrepo.ContentType(file))
	w.Header().Set("Content-Length", strconv.Itoa(len(raw)))
	w.Header().Set("Content-Disposition", "inline; filename="+strconv.Quote(file))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func (h *Handler) chartError(w http.ResponseWriter, r *http.Request, file string, err error) {
	if errors.Is(err, artifactrepo.ErrNotFound) || errors.Is(err, artifactrepo.ErrInvalidPath) {
		writeMessage(w, http.StatusNotFound, "Chart not found")
		return
	}
	h.logger.Warn("chart read failed", zap.String("file", file))
	h.writeError(w, r, err)
}
