package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/eyeradar/lexiquest/internal/logger"
)

// handleHealth responds with a simple liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleReady verifies the database connection before reporting ready.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := checkDatabase(ctx, s.DB); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("readiness check failed: %v", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("READY"))
}

func checkDatabase(ctx context.Context, db *sql.DB) error {
	return db.PingContext(ctx)
}
