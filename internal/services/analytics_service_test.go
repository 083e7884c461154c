package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eyeradar/lexiquest/internal/models"
	"github.com/eyeradar/lexiquest/internal/testutil/mocks"
)

func sessionsWithAccuracies(accs ...float64) []models.Session {
	out := make([]models.Session, len(accs))
	for i, a := range accs {
		out[i] = models.Session{Accuracy: a, Status: models.SessionCompleted}
	}
	return out
}

func TestImprovementTrend(t *testing.T) {
	tests := []struct {
		name     string
		sessions []models.Session
		want     string
	}{
		{"no sessions", nil, "no_data"},
		{"fewer than six sessions", sessionsWithAccuracies(80, 70, 60), "new"},
		{"recent clearly better", sessionsWithAccuracies(90, 90, 90, 90, 90, 60, 60, 60, 60, 60), "improving"},
		{"recent clearly worse", sessionsWithAccuracies(50, 50, 50, 50, 50, 80, 80, 80, 80, 80), "declining"},
		{"within the dead band", sessionsWithAccuracies(72, 72, 72, 72, 72, 70, 70, 70, 70, 70), "stable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, improvementTrend(tt.sessions))
		})
	}
}

func TestAreaStatus(t *testing.T) {
	assert.Equal(t, "Not started", areaStatus(0, 0))
	assert.Equal(t, "Excelling", areaStatus(3, 85))
	assert.Equal(t, "On track", areaStatus(3, 70))
	assert.Equal(t, "Needs practice", areaStatus(3, 50))
	assert.Equal(t, "Needs support", areaStatus(3, 49.9))
}

func TestAreaDisplayName(t *testing.T) {
	assert.Equal(t, "Phonological Awareness", areaDisplayName(models.PhonologicalAwareness))
	assert.Equal(t, "Rapid Naming", areaDisplayName(models.RapidNaming))
}

func TestOverview(t *testing.T) {
	studentRepo := new(mocks.MockStudentRepository)
	sessionRepo := new(mocks.MockSessionRepository)
	svc := NewAnalyticsService(studentRepo, sessionRepo)

	student := &models.Student{
		ID:   "st-1",
		Name: "Ada",
		Assessment: &models.Assessment{
			OverallSeverity: 3,
			Deficits: map[string]models.DeficitInfo{
				string(models.PhonologicalAwareness): {Severity: 4, Percentile: 12},
			},
		},
	}
	studentRepo.On("Get", mock.Anything, "st-1").Return(student, nil)
	sessionRepo.On("StudentStats", mock.Anything, "st-1").
		Return(&models.StudentStats{TotalSessions: 8, CompletedSessions: 7, AvgAccuracy: 74.5}, nil)
	sessionRepo.On("List", mock.Anything, mock.AnythingOfType("models.SessionFilter")).
		Return(sessionsWithAccuracies(80, 80, 80), nil)
	sessionRepo.On("AreaStats", mock.Anything, "st-1").
		Return(map[models.DeficitArea]models.AreaStats{
			models.PhonologicalAwareness: {Sessions: 5, AvgAccuracy: 78},
		}, nil)
	sessionRepo.On("AccuracyTrend", mock.Anything, "st-1", mock.AnythingOfType("models.DeficitArea"), 10).
		Return([]float64{60, 70, 80}, nil)

	overview, err := svc.Overview(context.Background(), "st-1")
	require.NoError(t, err)

	assert.Equal(t, "Ada", overview.StudentName)
	assert.Equal(t, 8, overview.TotalSessions)
	assert.Equal(t, 80.0, overview.TotalTimeMinutes)
	assert.Equal(t, "new", overview.ImprovementTrend)
	require.Len(t, overview.DeficitProgress, len(models.DeficitAreas))

	phono := overview.DeficitProgress[0]
	assert.Equal(t, models.PhonologicalAwareness, phono.Area)
	assert.Equal(t, 4, phono.InitialSeverity)
	assert.Equal(t, 5, phono.SessionsCompleted)

	// The severity-4 area outranks the severity-3 rest, and priorities
	// come back sorted.
	require.Len(t, overview.RecommendedFocus, len(models.DeficitAreas))
	assert.Equal(t, models.PhonologicalAwareness, overview.RecommendedFocus[0].Area)
	for i := 1; i < len(overview.RecommendedFocus); i++ {
		assert.LessOrEqual(t, overview.RecommendedFocus[i].Priority, overview.RecommendedFocus[i-1].Priority)
	}
}

func TestReport(t *testing.T) {
	studentRepo := new(mocks.MockStudentRepository)
	sessionRepo := new(mocks.MockSessionRepository)
	svc := NewAnalyticsService(studentRepo, sessionRepo)

	studentRepo.On("Get", mock.Anything, "st-1").Return(&models.Student{
		ID:            "st-1",
		Name:          "Ada",
		Age:           8,
		Grade:         3,
		TotalPoints:   900,
		Level:         3,
		CurrentStreak: 4,
		Badges:        []string{"first_steps"},
	}, nil)
	sessionRepo.On("StudentStats", mock.Anything, "st-1").
		Return(&models.StudentStats{TotalSessions: 12, CompletedSessions: 10, AvgAccuracy: 88}, nil)
	sessionRepo.On("AreaStats", mock.Anything, "st-1").
		Return(map[models.DeficitArea]models.AreaStats{
			models.PhonologicalAwareness: {Sessions: 10, AvgAccuracy: 88},
		}, nil)
	sessionRepo.On("AccuracyTrend", mock.Anything, "st-1", mock.AnythingOfType("models.DeficitArea"), 20).
		Return([]float64{85, 90}, nil)

	report, err := svc.Report(context.Background(), "st-1")
	require.NoError(t, err)

	assert.Equal(t, "Ada", report.Student.Name)
	assert.Equal(t, 10, report.Summary.CompletedSessions)
	assert.Equal(t, 1, report.Summary.BadgesEarned)
	assert.False(t, report.GeneratedAt.IsZero())

	require.Len(t, report.DeficitAreas, len(models.DeficitAreas))
	assert.Equal(t, "Excelling", report.DeficitAreas[0].Status)
	assert.Equal(t, "Not started", report.DeficitAreas[1].Status)
}
