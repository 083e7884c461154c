package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eyeradar/lexiquest/internal/models"
)

func (s *Server) handleRecordSession(w http.ResponseWriter, r *http.Request) {
	var session models.Session
	if err := decodeJSON(r, &session); err != nil {
		handleError(w, r, err)
		return
	}

	recorded, err := s.Sessions.RecordSession(r.Context(), session)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, recorded)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.Sessions.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, session)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.SessionFilter{
		StudentID: q.Get("student_id"),
		GameID:    q.Get("game_id"),
		Area:      q.Get("area"),
		Status:    q.Get("status"),
		OrderDir:  q.Get("order"),
	}
	if v := q.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filter.Limit = limit
		}
	}
	if v := q.Get("offset"); v != "" {
		if offset, err := strconv.Atoi(v); err == nil {
			filter.Offset = offset
		}
	}

	sessions, total, err := s.Sessions.ListSessions(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"sessions": sessions,
		"total":    total,
	})
}
