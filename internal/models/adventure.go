package models

import "time"

// AdventureWorld is one teacher-authored world inside a custom
// adventure map: an ordered list of game ids for one deficit area.
type AdventureWorld struct {
	DeficitArea string   `json:"deficit_area"`
	WorldNumber int      `json:"world_number"`
	WorldName   string   `json:"world_name"`
	Color       string   `json:"color"`
	GameIDs     []string `json:"game_ids"`
}

// ThemeConfig is interest-based visual theming for the adventure map.
type ThemeConfig struct {
	PrimaryInterest string `json:"primary_interest"`
	ColorPalette    string `json:"color_palette"`
	DecorationStyle string `json:"decoration_style"`
}

// DefaultTheme is applied when a student has no matching interests.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{ColorPalette: "default", DecorationStyle: "nature"}
}

type AdventureStatus string

const (
	AdventureActive   AdventureStatus = "active"
	AdventureArchived AdventureStatus = "archived"
)

// Adventure is a teacher-customized curriculum for one student. At
// most one adventure per student is active; creating a new one
// archives the rest.
type Adventure struct {
	ID        string          `json:"id"`
	StudentID string          `json:"student_id"`
	CreatedBy string          `json:"created_by,omitempty"`
	Title     string          `json:"title"`
	Worlds    []AdventureWorld `json:"worlds"`
	Theme     ThemeConfig     `json:"theme_config"`
	Status    AdventureStatus `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AdventureSuggestion is the output of the adventure builder, either
// rule-based or AI-assisted.
type AdventureSuggestion struct {
	SuggestedWorlds []AdventureWorld `json:"suggested_worlds"`
	Reasoning       []string         `json:"reasoning"`
	Theme           ThemeConfig      `json:"theme_config"`
}

// AdventureStatusEntry is one row of the batch status endpoint used by
// the teacher dashboard roster.
type AdventureStatusEntry struct {
	HasAdventure bool   `json:"has_adventure"`
	WorldCount   int    `json:"world_count"`
	Title        string `json:"title"`
}
