package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/eyeradar/lexiquest/internal/catalog"
	"github.com/eyeradar/lexiquest/internal/errors"
	"github.com/eyeradar/lexiquest/internal/gamification"
	"github.com/eyeradar/lexiquest/internal/jobs"
	"github.com/eyeradar/lexiquest/internal/logger"
	"github.com/eyeradar/lexiquest/internal/models"
	"github.com/eyeradar/lexiquest/internal/repository"
)

// SessionService handles play session business logic
type SessionService interface {
	RecordSession(ctx context.Context, session models.Session) (*models.Session, error)
	GetSession(ctx context.Context, id string) (*models.Session, error)
	ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.Session, int, error)
}

type sessionService struct {
	sessionRepo repository.SessionRepository
	studentRepo repository.StudentRepository
	jobQueue    jobs.JobQueue
}

// NewSessionService creates a new SessionService
func NewSessionService(sessionRepo repository.SessionRepository, studentRepo repository.StudentRepository, jobQueue jobs.JobQueue) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		studentRepo: studentRepo,
		jobQueue:    jobQueue,
	}
}

// RecordSession stores one play-through reported by the game client.
// Completed sessions get points computed server-side and are handed to
// the gamification worker for streaks and badges.
func (s *sessionService) RecordSession(ctx context.Context, session models.Session) (*models.Session, error) {
	log := logger.FromContext(ctx)

	if _, err := s.studentRepo.Get(ctx, session.StudentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("student", session.StudentID)
		}
		log.Error("failed to get student: %v", err)
		return nil, errors.NewInternalError(err)
	}

	game, ok := catalog.ByID(session.GameID)
	if !ok {
		return nil, errors.NewValidationError("game_id", "unknown game")
	}
	session.GameName = game.Name
	session.DeficitArea = game.DeficitArea

	if session.Accuracy < 0 || session.Accuracy > 100 {
		return nil, errors.NewValidationError("accuracy", "must be between 0 and 100")
	}

	now := time.Now().UTC()
	session.ID = uuid.NewString()
	if session.StartedAt.IsZero() {
		session.StartedAt = now
	}
	if session.Status == "" {
		session.Status = models.SessionCompleted
	}
	switch session.Status {
	case models.SessionCompleted:
		if session.CompletedAt == nil {
			session.CompletedAt = &now
		}
		if session.Accuracy == 0 && session.TotalItems > 0 {
			session.Accuracy = float64(session.CorrectCount) / float64(session.TotalItems) * 100
		}
		session.PointsEarned = gamification.SessionPoints(session.CorrectCount, session.TotalItems, session.Accuracy)
	case models.SessionInProgress, models.SessionAbandoned:
		session.PointsEarned = 0
	default:
		return nil, errors.NewValidationError("status", "unknown session status")
	}

	if err := s.sessionRepo.Insert(ctx, session); err != nil {
		log.Error("failed to insert session: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if session.Status == models.SessionCompleted {
		if err := s.jobQueue.EnqueueSessionProcessing(session.ID); err != nil {
			log.Warn("failed to enqueue gamification for session %s: %v", session.ID, err)
		}
	}

	log.Info("recorded session %s (student=%s, game=%s, status=%s)", session.ID, session.StudentID, session.GameID, session.Status)
	return &session, nil
}

func (s *sessionService) GetSession(ctx context.Context, id string) (*models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := s.sessionRepo.Get(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("session", id)
		}
		log.Error("failed to get session: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return session, nil
}

func (s *sessionService) ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.Session, int, error) {
	log := logger.FromContext(ctx)

	sessions, err := s.sessionRepo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list sessions: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}

	totalCount, err := s.sessionRepo.Count(ctx, filter)
	if err != nil {
		log.Error("failed to count sessions: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}

	return sessions, totalCount, nil
}
