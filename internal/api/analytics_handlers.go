package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleAnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.Analytics.Overview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, overview)
}

func (s *Server) handleAnalyticsReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.Analytics.Report(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, report)
}
