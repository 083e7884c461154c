package models

import "time"

// Badge is one achievement definition plus the student's earned state.
type Badge struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Category    string     `json:"category"`
	Requirement string     `json:"requirement"`
	Earned      bool       `json:"earned"`
	EarnedAt    *time.Time `json:"earned_at,omitempty"`
}

// LevelInfo describes a student's position on the XP curve.
type LevelInfo struct {
	Level           int     `json:"level"`
	Title           string  `json:"title"`
	XP              int     `json:"xp"`
	XPForNextLevel  int     `json:"xp_for_next_level"`
	ProgressPercent float64 `json:"progress_percent"`
}

// GamificationSummary is the student-facing reward overview.
type GamificationSummary struct {
	StudentID     string    `json:"student_id"`
	TotalPoints   int       `json:"total_points"`
	LevelInfo     LevelInfo `json:"level_info"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	Badges        []Badge   `json:"badges"`
	TotalSessions int       `json:"total_sessions"`
	TotalCorrect  int       `json:"total_correct"`
}
