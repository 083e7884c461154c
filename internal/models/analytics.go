package models

import "time"

// AreaStats is the aggregate a repository computes for one deficit
// area: completed session count and mean accuracy (0-100).
type AreaStats struct {
	Sessions    int     `json:"sessions"`
	AvgAccuracy float64 `json:"avg_accuracy"`
}

// StudentStats is the aggregate across all of a student's sessions.
type StudentStats struct {
	TotalSessions     int     `json:"total_sessions"`
	CompletedSessions int     `json:"completed_sessions"`
	TotalCorrect      int     `json:"total_correct"`
	AvgAccuracy       float64 `json:"avg_accuracy"`
}

// DeficitProgress tracks one area's trajectory for the analytics
// overview.
type DeficitProgress struct {
	Area              DeficitArea `json:"area"`
	InitialSeverity   int         `json:"initial_severity"`
	SessionsCompleted int         `json:"sessions_completed"`
	AccuracyTrend     []float64   `json:"accuracy_trend"`
	AvgAccuracy       float64     `json:"avg_accuracy"`
}

// AnalyticsOverview is the teacher-dashboard analytics payload.
type AnalyticsOverview struct {
	StudentID        string            `json:"student_id"`
	StudentName      string            `json:"student_name"`
	TotalSessions    int               `json:"total_sessions"`
	TotalTimeMinutes float64           `json:"total_time_minutes"`
	OverallAccuracy  float64           `json:"overall_accuracy"`
	DeficitProgress  []DeficitProgress `json:"deficit_progress"`
	RecentSessions   []Session         `json:"recent_sessions"`
	ImprovementTrend string            `json:"improvement_trend"`
	RecommendedFocus []AreaFocus       `json:"recommended_focus"`
}

// AreaFocus scores how urgently one deficit area needs practice,
// ordered most urgent first in the overview.
type AreaFocus struct {
	Area              DeficitArea `json:"area"`
	Severity          int         `json:"severity"`
	Priority          int         `json:"priority"`
	SessionsCompleted int         `json:"sessions_completed"`
	AvgAccuracy       float64     `json:"avg_accuracy"`
	Trend             string      `json:"trend"`
}

// AreaReport is one deficit area in the educator report, with a
// human-readable status band.
type AreaReport struct {
	Area              DeficitArea `json:"area"`
	AreaName          string      `json:"area_name"`
	SessionsCompleted int         `json:"sessions_completed"`
	AvgAccuracy       float64     `json:"avg_accuracy"`
	AccuracyTrend     []float64   `json:"accuracy_trend"`
	Status            string      `json:"status"`
}

// StudentReport is the printable educator/parent report.
type StudentReport struct {
	Student struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Age   int    `json:"age"`
		Grade int    `json:"grade"`
	} `json:"student"`
	Summary struct {
		TotalSessions     int     `json:"total_sessions"`
		CompletedSessions int     `json:"completed_sessions"`
		OverallAccuracy   float64 `json:"overall_accuracy"`
		TotalPoints       int     `json:"total_points"`
		Level             int     `json:"level"`
		CurrentStreak     int     `json:"current_streak"`
		BadgesEarned      int     `json:"badges_earned"`
	} `json:"summary"`
	DeficitAreas []AreaReport `json:"deficit_areas"`
	GeneratedAt  time.Time    `json:"generated_at"`
}
