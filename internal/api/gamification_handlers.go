package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleGamificationSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.Gamification.Summary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, summary)
}
