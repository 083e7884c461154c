package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eyeradar/lexiquest/internal/catalog"
	"github.com/eyeradar/lexiquest/internal/errors"
	"github.com/eyeradar/lexiquest/internal/models"
)

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games := catalog.All()
	respondJSON(w, r, http.StatusOK, map[string]any{
		"games": games,
		"total": len(games),
	})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	game, ok := catalog.ByID(id)
	if !ok {
		handleError(w, r, errors.NewNotFoundError("game", id))
		return
	}
	respondJSON(w, r, http.StatusOK, game)
}

func (s *Server) handleGamesByArea(w http.ResponseWriter, r *http.Request) {
	area := chi.URLParam(r, "area")
	if !models.ValidDeficitArea(area) {
		handleError(w, r, errors.NewValidationError("area", "unknown deficit area: "+area))
		return
	}

	var games []models.GameDefinition
	if ageParam := r.URL.Query().Get("age"); ageParam != "" {
		age, err := strconv.Atoi(ageParam)
		if err != nil {
			handleError(w, r, errors.NewValidationError("age", "must be an integer"))
			return
		}
		games = catalog.ByAreaForAge(models.DeficitArea(area), age)
	} else {
		games = catalog.ByArea(models.DeficitArea(area))
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"area":  area,
		"games": games,
		"total": len(games),
	})
}
