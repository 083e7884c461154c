package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eyeradar/lexiquest/internal/errors"
	"github.com/eyeradar/lexiquest/internal/models"
	"github.com/eyeradar/lexiquest/internal/services"
)

func (s *Server) handleCreateAdventure(w http.ResponseWriter, r *http.Request) {
	var input services.AdventureInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	adventure, err := s.Adventures.CreateAdventure(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, adventure)
}

func (s *Server) handleGetAdventure(w http.ResponseWriter, r *http.Request) {
	adventure, err := s.Adventures.GetAdventure(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, adventure)
}

func (s *Server) handleActiveAdventure(w http.ResponseWriter, r *http.Request) {
	adventure, err := s.Adventures.GetActiveAdventure(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, adventure)
}

func (s *Server) handleListAdventures(w http.ResponseWriter, r *http.Request) {
	adventures, err := s.Adventures.ListAdventures(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"adventures": adventures,
		"total":      len(adventures),
	})
}

func (s *Server) handleUpdateAdventure(w http.ResponseWriter, r *http.Request) {
	var input services.AdventureInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	adventure, err := s.Adventures.UpdateAdventure(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, adventure)
}

func (s *Server) handleDeleteAdventure(w http.ResponseWriter, r *http.Request) {
	if err := s.Adventures.DeleteAdventure(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAdventureStatusAll(w http.ResponseWriter, r *http.Request) {
	statuses, err := s.Adventures.StatusAll(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, statuses)
}

func (s *Server) handleSuggestAdventure(w http.ResponseWriter, r *http.Request) {
	var input services.SuggestInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	suggestion, err := s.Adventures.Suggest(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, suggestion)
}

func (s *Server) handleGamesForArea(w http.ResponseWriter, r *http.Request) {
	area := chi.URLParam(r, "area")
	q := r.URL.Query()

	age := 0
	if v := q.Get("age"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			handleError(w, r, errors.NewValidationError("age", "must be an integer"))
			return
		}
		age = parsed
	}

	games, err := s.Adventures.GamesForArea(r.Context(), models.DeficitArea(area), age, q.Get("severity"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"area":  area,
		"games": games,
		"total": len(games),
	})
}
