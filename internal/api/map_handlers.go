package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eyeradar/lexiquest/internal/errors"
	"github.com/eyeradar/lexiquest/internal/models"
)

func (s *Server) handleWorldSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.Maps.WorldSummaries(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"worlds": summaries,
	})
}

func (s *Server) handleWorldMap(w http.ResponseWriter, r *http.Request) {
	world := chi.URLParam(r, "world")
	if !models.ValidDeficitArea(world) {
		handleError(w, r, errors.NewValidationError("world", "unknown deficit area: "+world))
		return
	}

	payload, err := s.Maps.WorldMap(r.Context(), chi.URLParam(r, "id"), models.DeficitArea(world))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, payload)
}

func (s *Server) handleOverworld(w http.ResponseWriter, r *http.Request) {
	overworld, err := s.Maps.Overworld(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, overworld)
}
