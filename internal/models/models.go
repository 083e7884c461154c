package models

import "time"

// DeficitArea is one of the six fixed skill categories used to bucket
// games into worlds on the adventure map.
type DeficitArea string

const (
	PhonologicalAwareness DeficitArea = "phonological_awareness"
	RapidNaming           DeficitArea = "rapid_naming"
	WorkingMemory         DeficitArea = "working_memory"
	VisualProcessing      DeficitArea = "visual_processing"
	ReadingFluency        DeficitArea = "reading_fluency"
	Comprehension         DeficitArea = "comprehension"
)

// DeficitAreas lists all areas in canonical world order.
var DeficitAreas = []DeficitArea{
	PhonologicalAwareness,
	RapidNaming,
	WorkingMemory,
	VisualProcessing,
	ReadingFluency,
	Comprehension,
}

// ValidDeficitArea reports whether s names a known deficit area.
func ValidDeficitArea(s string) bool {
	for _, a := range DeficitAreas {
		if string(a) == s {
			return true
		}
	}
	return false
}

type GameType string

const (
	GameMultipleChoice GameType = "multiple_choice"
	GameGridMemory     GameType = "grid_memory"
	GameSequenceTap    GameType = "sequence_tap"
	GameTextInput      GameType = "text_input"
	GameSorting        GameType = "sorting"
	GameSpeedRound     GameType = "speed_round"
	GameWordBuilding   GameType = "word_building"
	GameTimedReading   GameType = "timed_reading"
	GameSpotTarget     GameType = "spot_target"
	GameFillBlank      GameType = "fill_blank"
	GameTracking       GameType = "tracking"
	GamePatternMatch   GameType = "pattern_match"
	GameDualTask       GameType = "dual_task"
	GameYesNo          GameType = "yes_no"
	GameVoiceInput     GameType = "voice_input"
	GameImageMatch     GameType = "image_match"
	GameGridNaming     GameType = "grid_naming"
	GameCastleBoss     GameType = "castle_boss"
)

// GameDefinition describes one mini-game in the static catalog.
/// Definitions are read-only: the frontend interprets GameType to pick
// the interactive mechanic.
type GameDefinition struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	DeficitArea      DeficitArea `json:"deficit_area"`
	GameType         GameType    `json:"game_type"`
	AgeRangeMin      int         `json:"age_range_min"`
	AgeRangeMax      int         `json:"age_range_max"`
	Mechanics        string      `json:"mechanics"`
	Instructions     string      `json:"instructions"`
	Icon             string      `json:"icon"`
	DifficultyLevels int         `json:"difficulty_levels"`
}

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionAbandoned  SessionStatus = "abandoned"
)

// Session is one play-through of a game by a student. Accuracy is a
// percentage in [0,100]; only completed sessions count toward map
// progress.
type Session struct {
	ID           string        `json:"id"`
	StudentID    string        `json:"student_id"`
	GameID       string        `json:"game_id"`
	GameName     string        `json:"game_name"`
	DeficitArea  DeficitArea   `json:"deficit_area"`
	Status       SessionStatus `json:"status"`
	Accuracy     float64       `json:"accuracy"`
	CorrectCount int           `json:"correct_count"`
	TotalItems   int           `json:"total_items"`
	PointsEarned int           `json:"points_earned"`
	StartedAt    time.Time     `json:"started_at"`
	CompletedAt  *time.Time    `json:"completed_at"`
}

type SessionFilter struct {
	StudentID string
	GameID    string
	Area      string
	Status    string
	Limit     int
	Offset    int
	OrderDir  string
}

// Diagnostic is the teacher-entered dyslexia profile for a student.
type Diagnostic struct {
	DyslexiaType          string `json:"dyslexia_type"`
	SeverityLevel         string `json:"severity_level"`
	PhonologicalSeverity  int    `json:"phonological_severity"`
	RapidNamingSeverity   int    `json:"rapid_naming_severity"`
	WorkingMemorySeverity int    `json:"working_memory_severity"`
	VisualSeverity        int    `json:"visual_processing_severity"`
	FluencySeverity       int    `json:"reading_fluency_severity"`
	ComprehensionSeverity int    `json:"comprehension_severity"`
	HasADHD               bool   `json:"has_adhd"`
	HasDyscalculia        bool   `json:"has_dyscalculia"`
	HasDysgraphia         bool   `json:"has_dysgraphia"`
	Notes                 string `json:"notes,omitempty"`
}

// AreaSeverity returns the 1-5 rating for one deficit area, defaulting
// to 3 when the teacher never rated it.
func (d Diagnostic) AreaSeverity(area DeficitArea) int {
	v := 0
	switch area {
	case PhonologicalAwareness:
		v = d.PhonologicalSeverity
	case RapidNaming:
		v = d.RapidNamingSeverity
	case WorkingMemory:
		v = d.WorkingMemorySeverity
	case VisualProcessing:
		v = d.VisualSeverity
	case ReadingFluency:
		v = d.FluencySeverity
	case Comprehension:
		v = d.ComprehensionSeverity
	}
	if v < 1 || v > 5 {
		return 3
	}
	return v
}

// DeficitInfo is one per-area score from an eye-tracking assessment.
type DeficitInfo struct {
	Severity   int `json:"severity"`
	Percentile int `json:"percentile"`
}

type ReadingMetrics struct {
	FixationDurationMs   float64 `json:"fixation_duration_ms"`
	FixationCountPerLine float64 `json:"fixation_count_per_line"`
	RegressionRate       float64 `json:"regression_rate"`
	WordsPerMinute       float64 `json:"words_per_minute"`
}

// Assessment holds imported EyeRadar eye-tracking results.
type Assessment struct {
	AssessmentDate  time.Time              `json:"assessment_date"`
	OverallSeverity int                    `json:"overall_severity"`
	Deficits        map[string]DeficitInfo `json:"deficits"`
	ReadingMetrics  ReadingMetrics         `json:"reading_metrics"`
}

// Student is a learner profile owned by a teacher.
type Student struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Age             int         `json:"age"`
	Grade           int         `json:"grade"`
	Language        string      `json:"language"`
	Interests       []string    `json:"interests"`
	Diagnostic      Diagnostic  `json:"diagnostic"`
	Assessment      *Assessment `json:"assessment,omitempty"`
	TotalPoints     int         `json:"total_points"`
	XP              int         `json:"xp"`
	Level           int         `json:"level"`
	CurrentStreak   int         `json:"current_streak"`
	LongestStreak   int         `json:"longest_streak"`
	LastSessionDate string      `json:"last_session_date,omitempty"`
	Badges          []string    `json:"badges"`
	CreatedAt       time.Time   `json:"created_at"`
}
