package models

// NodeState is the progress state of one node on the adventure map.
// Across any node sequence at most one node is current, and it is the
// first node that is not completed.
type NodeState string

const (
	NodeCompleted NodeState = "completed"
	NodeCurrent   NodeState = "current"
	NodeLocked    NodeState = "locked"
)

type NodeType string

const (
	NodeLevel  NodeType = "level"
	NodeCastle NodeType = "castle"
)

// Position is a pixel coordinate inside the map canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LevelNode wraps one game with the student's progress on it.
// SessionsPlayed counts all sessions for completed levels, only
// unfinished attempts for the current level, and is always 0 for
// locked levels.
type LevelNode struct {
	Game           GameDefinition `json:"game"`
	State          NodeState      `json:"state"`
	Stars          int            `json:"stars"`
	BestAccuracy   float64        `json:"best_accuracy"`
	SessionsPlayed int            `json:"sessions_played"`
}

// MapNode is one positioned node on the rendered map: either a level
// (wrapping a game) or a castle checkpoint. Castle nodes carry no game
// and earn no stars.
type MapNode struct {
	ID           string          `json:"id"`
	Type         NodeType        `json:"type"`
	Label        string          `json:"label"`
	LevelNumber  int             `json:"level_number"`
	State        NodeState       `json:"state"`
	Stars        int             `json:"stars"`
	BestAccuracy float64         `json:"best_accuracy"`
	Game         *GameDefinition `json:"game,omitempty"`
	Position     Position        `json:"position"`
}

// WorldSummary is the per-world rollup consumed by dashboards. Worlds
// with zero levels are never emitted.
type WorldSummary struct {
	Area            DeficitArea `json:"area"`
	WorldNumber     int         `json:"world_number"`
	WorldName       string      `json:"world_name"`
	Label           string      `json:"label"`
	Color           string      `json:"color"`
	TotalLevels     int         `json:"total_levels"`
	CompletedLevels int         `json:"completed_levels"`
	TotalStars      int         `json:"total_stars"`
	MaxStars        int         `json:"max_stars"`
	ProgressPercent float64     `json:"progress_percent"`
}

// DecorationPlacement is one piece of scenery on the map canvas,
// regenerated deterministically from the world index on every request.
type DecorationPlacement struct {
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`
	Flip bool    `json:"flip,omitempty"`
}

// WorldMap is the full render payload for one world: positioned nodes,
// the connective road (full and up to the current node), and scenery.
type WorldMap struct {
	Area          DeficitArea           `json:"area"`
	WorldNumber   int                   `json:"world_number"`
	WorldName     string                `json:"world_name"`
	Color         string                `json:"color"`
	Theme         ThemeConfig           `json:"theme_config"`
	Width         float64               `json:"width"`
	Height        float64               `json:"height"`
	Nodes         []MapNode             `json:"nodes"`
	Road          string                `json:"road"`
	RoadToCurrent string                `json:"road_to_current"`
	Decorations   []DecorationPlacement `json:"decorations"`
}

// OverworldNode is one world marker on the small overworld map, in
// percentage coordinates.
type OverworldNode struct {
	Area        DeficitArea `json:"area"`
	WorldNumber int         `json:"world_number"`
	WorldName   string      `json:"world_name"`
	Color       string      `json:"color"`
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	Unlocked    bool        `json:"unlocked"`
}

// Overworld is the render payload for the world-selection screen.
type Overworld struct {
	Width  float64         `json:"width"`
	Height float64         `json:"height"`
	Nodes  []OverworldNode `json:"nodes"`
	Road   string          `json:"road"`
}

// LevelStart is the declarative payload handed to the Phaser battle
// overlay when a level begins. The renderer is opaque to this service;
// it only interprets this structure.
type LevelStart struct {
	GameID      string        `json:"game_id"`
	LevelNumber int           `json:"level_number"`
	WorldArea   DeficitArea   `json:"world_area"`
	WorldName   string        `json:"world_name"`
	Theme       ThemeConfig   `json:"theme_config"`
	BossKind    string        `json:"boss_kind"`
	IsBoss      bool          `json:"is_boss"`
	Difficulty  int           `json:"difficulty"`
	Params      SessionParams `json:"session_params"`
}

// SessionParams sizes one exercise session for a difficulty level.
type SessionParams struct {
	ItemCount        int `json:"item_count"`
	TimeLimitSeconds int `json:"time_limit_seconds"`
	HintsAvailable   int `json:"hints_available"`
	DistractorCount  int `json:"distractor_count"`
}
