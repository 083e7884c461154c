package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eyeradar/lexiquest/internal/services"
)

type Server struct {
	DB           *sql.DB
	Students     services.StudentService
	Sessions     services.SessionService
	Maps         services.MapService
	Adventures   services.AdventureService
	Gamification services.GamificationService
	Analytics    services.AnalyticsService
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(timeoutMiddleware(60 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Route("/students", func(r chi.Router) {
			r.Get("/", s.handleListStudents)
			r.Post("/", s.handleCreateStudent)
			r.Get("/{id}", s.handleGetStudent)
			r.Put("/{id}", s.handleUpdateStudent)
			r.Patch("/{id}", s.handlePatchStudent)
			r.Delete("/{id}", s.handleDeleteStudent)
			r.Post("/{id}/assessment", s.handleImportAssessment)

			r.Get("/{id}/worlds", s.handleWorldSummaries)
			r.Get("/{id}/map/{world}", s.handleWorldMap)
			r.Get("/{id}/overworld", s.handleOverworld)

			r.Get("/{id}/gamification", s.handleGamificationSummary)
			r.Get("/{id}/analytics/overview", s.handleAnalyticsOverview)
			r.Get("/{id}/analytics/report", s.handleAnalyticsReport)
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/", s.handleListGames)
			r.Get("/by-area/{area}", s.handleGamesByArea)
			r.Get("/{id}", s.handleGetGame)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", s.handleListSessions)
			r.Post("/", s.handleRecordSession)
			r.Get("/{id}", s.handleGetSession)
		})

		r.Route("/adventures", func(r chi.Router) {
			r.Post("/", s.handleCreateAdventure)
			r.Post("/suggest", s.handleSuggestAdventure)
			r.Get("/status/all", s.handleAdventureStatusAll)
			r.Get("/games-for-area/{area}", s.handleGamesForArea)
			r.Get("/student/{id}", s.handleActiveAdventure)
			r.Get("/student/{id}/all", s.handleListAdventures)
			r.Get("/{id}", s.handleGetAdventure)
			r.Put("/{id}", s.handleUpdateAdventure)
			r.Delete("/{id}", s.handleDeleteAdventure)
		})
	})

	return r
}
