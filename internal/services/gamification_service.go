package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/eyeradar/lexiquest/internal/errors"
	"github.com/eyeradar/lexiquest/internal/gamification"
	"github.com/eyeradar/lexiquest/internal/logger"
	"github.com/eyeradar/lexiquest/internal/models"
	"github.com/eyeradar/lexiquest/internal/repository"
)

// GamificationService handles reward progression business logic
type GamificationService interface {
	Summary(ctx context.Context, studentID string) (*models.GamificationSummary, error)
	ProcessSessionCompletion(ctx context.Context, sessionID string) error
}

type gamificationService struct {
	studentRepo repository.StudentRepository
	sessionRepo repository.SessionRepository
}

// NewGamificationService creates a new GamificationService
func NewGamificationService(studentRepo repository.StudentRepository, sessionRepo repository.SessionRepository) GamificationService {
	return &gamificationService{
		studentRepo: studentRepo,
		sessionRepo: sessionRepo,
	}
}

func (s *gamificationService) Summary(ctx context.Context, studentID string) (*models.GamificationSummary, error) {
	log := logger.FromContext(ctx)

	student, err := s.studentRepo.Get(ctx, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("student", studentID)
		}
		log.Error("failed to get student: %v", err)
		return nil, errors.NewInternalError(err)
	}

	stats, err := s.sessionRepo.StudentStats(ctx, studentID)
	if err != nil {
		log.Error("failed to compute student stats: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return &models.GamificationSummary{
		StudentID:     student.ID,
		TotalPoints:   student.TotalPoints,
		LevelInfo:     gamification.LevelInfo(student.XP),
		CurrentStreak: student.CurrentStreak,
		LongestStreak: student.LongestStreak,
		Badges:        gamification.AllBadges(student.Badges),
		TotalSessions: stats.CompletedSessions,
		TotalCorrect:  stats.TotalCorrect,
	}, nil
}

// ProcessSessionCompletion applies one completed session to the
// student's reward state: points, XP and level, streak, and any newly
// earned badges. Runs on the worker pool after session submission.
func (s *gamificationService) ProcessSessionCompletion(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx).WithField("session_id", sessionID)

	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("session", sessionID)
		}
		log.Error("failed to get session: %v", err)
		return errors.NewInternalError(err)
	}
	if session.Status != models.SessionCompleted {
		log.Debug("session not completed, skipping gamification")
		return nil
	}

	student, err := s.studentRepo.Get(ctx, session.StudentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("student", session.StudentID)
		}
		log.Error("failed to get student: %v", err)
		return errors.NewInternalError(err)
	}

	student.TotalPoints += session.PointsEarned
	student.XP += session.PointsEarned

	newLevel := gamification.LevelFromXP(student.XP)
	if newLevel > student.Level {
		log.Info("student %s leveled up: %d -> %d", student.ID, student.Level, newLevel)
	}
	student.Level = newLevel

	completedAt := time.Now().UTC()
	if session.CompletedAt != nil {
		completedAt = *session.CompletedAt
	}
	streak := gamification.UpdateStreak(student.CurrentStreak, student.LongestStreak, student.LastSessionDate, completedAt)
	student.CurrentStreak = streak.CurrentStreak
	student.LongestStreak = streak.LongestStreak
	student.LastSessionDate = streak.LastSessionDate

	badgeCtx, err := s.badgeContext(ctx, student, session, completedAt)
	if err != nil {
		log.Error("failed to assemble badge context: %v", err)
		return errors.NewInternalError(err)
	}

	newBadges := gamification.CheckBadges(badgeCtx)
	if len(newBadges) > 0 {
		student.Badges = append(student.Badges, newBadges...)
		log.Info("student %s earned badges: %v", student.ID, newBadges)
	}

	if err := s.studentRepo.Update(ctx, *student); err != nil {
		log.Error("failed to persist gamification update: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *gamificationService) badgeContext(ctx context.Context, student *models.Student, session *models.Session, completedAt time.Time) (gamification.BadgeContext, error) {
	stats, err := s.sessionRepo.StudentStats(ctx, student.ID)
	if err != nil {
		return gamification.BadgeContext{}, err
	}

	areaStats, err := s.sessionRepo.AreaStats(ctx, student.ID)
	if err != nil {
		return gamification.BadgeContext{}, err
	}
	areaProgress := make(map[models.DeficitArea]gamification.AreaProgress, len(areaStats))
	for area, st := range areaStats {
		areaProgress[area] = gamification.AreaProgress{
			Sessions:    st.Sessions,
			AvgAccuracy: st.AvgAccuracy,
		}
	}

	sessionsToday, err := s.sessionRepo.CountCompletedOnDate(ctx, student.ID, completedAt.Format("2006-01-02"))
	if err != nil {
		return gamification.BadgeContext{}, err
	}

	areasPlayed, err := s.sessionRepo.AreasPlayed(ctx, student.ID)
	if err != nil {
		return gamification.BadgeContext{}, err
	}

	return gamification.BadgeContext{
		EarnedBadges:      student.Badges,
		CompletedSessions: stats.CompletedSessions,
		TotalPoints:       student.TotalPoints,
		CurrentStreak:     student.CurrentStreak,
		Level:             student.Level,
		SessionAccuracy:   session.Accuracy,
		SessionsToday:     sessionsToday,
		AreasPlayed:       areasPlayed,
		AreaStats:         areaProgress,
	}, nil
}
