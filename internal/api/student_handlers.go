package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eyeradar/lexiquest/internal/models"
	"github.com/eyeradar/lexiquest/internal/services"
)

func (s *Server) handleListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := s.Students.ListStudents(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"students": students,
		"total":    len(students),
	})
}

func (s *Server) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	var student models.Student
	if err := decodeJSON(r, &student); err != nil {
		handleError(w, r, err)
		return
	}

	created, err := s.Students.CreateStudent(r.Context(), student)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := s.Students.GetStudent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, student)
}

func (s *Server) handleUpdateStudent(w http.ResponseWriter, r *http.Request) {
	var student models.Student
	if err := decodeJSON(r, &student); err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.Students.UpdateStudent(r.Context(), chi.URLParam(r, "id"), student)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handlePatchStudent(w http.ResponseWriter, r *http.Request) {
	var patch services.StudentPatch
	if err := decodeJSON(r, &patch); err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.Students.PatchStudent(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	if err := s.Students.DeleteStudent(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleImportAssessment(w http.ResponseWriter, r *http.Request) {
	var assessment models.Assessment
	if err := decodeJSON(r, &assessment); err != nil {
		handleError(w, r, err)
		return
	}

	student, err := s.Students.ImportAssessment(r.Context(), chi.URLParam(r, "id"), assessment)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, student)
}
