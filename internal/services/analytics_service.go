package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/eyeradar/lexiquest/internal/difficulty"
	"github.com/eyeradar/lexiquest/internal/errors"
	"github.com/eyeradar/lexiquest/internal/logger"
	"github.com/eyeradar/lexiquest/internal/models"
	"github.com/eyeradar/lexiquest/internal/repository"
)

// AnalyticsService computes teacher-facing progress read models
type AnalyticsService interface {
	Overview(ctx context.Context, studentID string) (*models.AnalyticsOverview, error)
	Report(ctx context.Context, studentID string) (*models.StudentReport, error)
}

type analyticsService struct {
	studentRepo repository.StudentRepository
	sessionRepo repository.SessionRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(studentRepo repository.StudentRepository, sessionRepo repository.SessionRepository) AnalyticsService {
	return &analyticsService{
		studentRepo: studentRepo,
		sessionRepo: sessionRepo,
	}
}

// Each session is a short timed exercise; ten minutes is the planning
// estimate used for total-time reporting.
const estimatedSessionMinutes = 10

func (s *analyticsService) getStudent(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := s.studentRepo.Get(ctx, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("student", studentID)
		}
		return nil, errors.NewInternalError(err)
	}
	return student, nil
}

func (s *analyticsService) Overview(ctx context.Context, studentID string) (*models.AnalyticsOverview, error) {
	log := logger.FromContext(ctx)

	student, err := s.getStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	stats, err := s.sessionRepo.StudentStats(ctx, studentID)
	if err != nil {
		log.Error("failed to compute student stats: %v", err)
		return nil, errors.NewInternalError(err)
	}

	recentSessions, err := s.sessionRepo.List(ctx, models.SessionFilter{StudentID: studentID, Limit: 10})
	if err != nil {
		log.Error("failed to list recent sessions: %v", err)
		return nil, errors.NewInternalError(err)
	}

	progress := make([]models.DeficitProgress, 0, len(models.DeficitAreas))
	areaStats, err := s.sessionRepo.AreaStats(ctx, studentID)
	if err != nil {
		log.Error("failed to compute area stats: %v", err)
		return nil, errors.NewInternalError(err)
	}

	severities := make(map[models.DeficitArea]int, len(models.DeficitAreas))
	history := make(map[models.DeficitArea][]float64, len(models.DeficitAreas))
	for _, area := range models.DeficitAreas {
		trend, err := s.sessionRepo.AccuracyTrend(ctx, studentID, area, 10)
		if err != nil {
			log.Error("failed to load accuracy trend for %s: %v", area, err)
			return nil, errors.NewInternalError(err)
		}

		initialSeverity := 0
		if student.Assessment != nil {
			if info, ok := student.Assessment.Deficits[string(area)]; ok {
				initialSeverity = info.Severity
			}
		}

		severities[area] = initialSeverity
		if initialSeverity == 0 {
			severities[area] = 3
		}
		history[area] = trend

		st := areaStats[area]
		progress = append(progress, models.DeficitProgress{
			Area:              area,
			InitialSeverity:   initialSeverity,
			SessionsCompleted: st.Sessions,
			AccuracyTrend:     trend,
			AvgAccuracy:       st.AvgAccuracy,
		})
	}

	return &models.AnalyticsOverview{
		StudentID:        student.ID,
		StudentName:      student.Name,
		TotalSessions:    stats.TotalSessions,
		TotalTimeMinutes: float64(stats.TotalSessions * estimatedSessionMinutes),
		OverallAccuracy:  stats.AvgAccuracy,
		DeficitProgress:  progress,
		RecentSessions:   recentSessions,
		ImprovementTrend: improvementTrend(recentSessions),
		RecommendedFocus: difficulty.RecommendFocus(severities, history),
	}, nil
}

// improvementTrend compares the average accuracy of the five most
// recent sessions against the five before them. Accuracy is on a 0-100
// scale so the dead band is five points.
func improvementTrend(sessions []models.Session) string {
	recent := sessions
	if len(recent) > 5 {
		recent = sessions[:5]
	}
	var older []models.Session
	if len(sessions) > 5 {
		older = sessions[5:]
		if len(older) > 5 {
			older = older[:5]
		}
	}

	if len(recent) == 0 {
		return "no_data"
	}
	if len(older) == 0 {
		return "new"
	}

	avg := func(ss []models.Session) float64 {
		sum := 0.0
		for _, s := range ss {
			sum += s.Accuracy
		}
		return sum / float64(len(ss))
	}

	recentAvg, olderAvg := avg(recent), avg(older)
	switch {
	case recentAvg > olderAvg+5:
		return "improving"
	case recentAvg < olderAvg-5:
		return "declining"
	default:
		return "stable"
	}
}

// areaStatus bands an area's mean accuracy (0-100) into the report
// wording educators see.
func areaStatus(sessions int, avgAccuracy float64) string {
	switch {
	case sessions == 0:
		return "Not started"
	case avgAccuracy >= 85:
		return "Excelling"
	case avgAccuracy >= 70:
		return "On track"
	case avgAccuracy >= 50:
		return "Needs practice"
	default:
		return "Needs support"
	}
}

func areaDisplayName(area models.DeficitArea) string {
	words := strings.Split(string(area), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func (s *analyticsService) Report(ctx context.Context, studentID string) (*models.StudentReport, error) {
	log := logger.FromContext(ctx)

	student, err := s.getStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	stats, err := s.sessionRepo.StudentStats(ctx, studentID)
	if err != nil {
		log.Error("failed to compute student stats: %v", err)
		return nil, errors.NewInternalError(err)
	}

	areaStats, err := s.sessionRepo.AreaStats(ctx, studentID)
	if err != nil {
		log.Error("failed to compute area stats: %v", err)
		return nil, errors.NewInternalError(err)
	}

	areas := make([]models.AreaReport, 0, len(models.DeficitAreas))
	for _, area := range models.DeficitAreas {
		trend, err := s.sessionRepo.AccuracyTrend(ctx, studentID, area, 20)
		if err != nil {
			log.Error("failed to load accuracy trend for %s: %v", area, err)
			return nil, errors.NewInternalError(err)
		}

		st := areaStats[area]
		areas = append(areas, models.AreaReport{
			Area:              area,
			AreaName:          areaDisplayName(area),
			SessionsCompleted: st.Sessions,
			AvgAccuracy:       st.AvgAccuracy,
			AccuracyTrend:     trend,
			Status:            areaStatus(st.Sessions, st.AvgAccuracy),
		})
	}

	report := &models.StudentReport{
		DeficitAreas: areas,
		GeneratedAt:  time.Now().UTC(),
	}
	report.Student.ID = student.ID
	report.Student.Name = student.Name
	report.Student.Age = student.Age
	report.Student.Grade = student.Grade
	report.Summary.TotalSessions = stats.TotalSessions
	report.Summary.CompletedSessions = stats.CompletedSessions
	report.Summary.OverallAccuracy = stats.AvgAccuracy
	report.Summary.TotalPoints = student.TotalPoints
	report.Summary.Level = student.Level
	report.Summary.CurrentStreak = student.CurrentStreak
	report.Summary.BadgesEarned = len(student.Badges)

	return report, nil
}
