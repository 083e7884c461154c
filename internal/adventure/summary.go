package adventure

import (
	"fmt"

	"github.com/eyeradar/lexiquest/internal/catalog"
	"github.com/eyeradar/lexiquest/internal/models"
)

// WorldNames and WorldColors are the fixed presentation metadata for
// the six default worlds.
var WorldNames = map[models.DeficitArea]string{
	models.PhonologicalAwareness: "Sound Kingdom",
	models.RapidNaming:           "Speed Valley",
	models.WorkingMemory:         "Memory Mountains",
	models.VisualProcessing:      "Vision Forest",
	models.ReadingFluency:        "Fluency River",
	models.Comprehension:         "Story Castle",
}

var WorldColors = map[models.DeficitArea]string{
	models.PhonologicalAwareness: "#6366f1",
	models.RapidNaming:           "#f59e0b",
	models.WorkingMemory:         "#8b5cf6",
	models.VisualProcessing:      "#10b981",
	models.ReadingFluency:        "#3b82f6",
	models.Comprehension:         "#ef4444",
}

// World is a resolved world: metadata plus the concrete ordered game
// list a student will play through.
type World struct {
	Area   models.DeficitArea
	Number int
	Name   string
	Color  string
	Games  []models.GameDefinition
}

// DefaultWorlds builds the stock curriculum for a student age: one
// world per deficit area, in canonical area order, skipping areas with
// no age-appropriate games. Numbering stays sequential after skips.
func DefaultWorlds(age int) []World {
	var worlds []World
	for _, area := range models.DeficitAreas {
		all := catalog.ByAreaForAge(area, age)
		// Boss levels live on castle nodes, not in the level list.
		games := make([]models.GameDefinition, 0, len(all))
		for _, g := range all {
			if g.GameType != models.GameCastleBoss {
				games = append(games, g)
			}
		}
		if len(games) == 0 {
			continue
		}
		worlds = append(worlds, World{
			Area:   area,
			Number: len(worlds) + 1,
			Name:   WorldNames[area],
			Color:  WorldColors[area],
			Games:  games,
		})
	}
	return worlds
}

// CustomWorlds resolves a teacher-authored adventure against the game
// catalog. Unknown game ids are dropped without error; worlds that
// resolve to nothing are omitted.
func CustomWorlds(authored []models.AdventureWorld) []World {
	var worlds []World
	for _, aw := range authored {
		games := catalog.Resolve(aw.GameIDs)
		if len(games) == 0 {
			continue
		}
		area := models.DeficitArea(aw.DeficitArea)
		name := aw.WorldName
		if name == "" {
			name = WorldNames[area]
		}
		color := aw.Color
		if color == "" {
			color = WorldColors[area]
		}
		worlds = append(worlds, World{
			Area:   area,
			Number: aw.WorldNumber,
			Name:   name,
			Color:  color,
			Games:  games,
		})
	}
	return worlds
}

// Summaries rolls resolved worlds up into the dashboard read model.
func Summaries(worlds []World, sessions []models.Session) []models.WorldSummary {
	summaries := make([]models.WorldSummary, 0, len(worlds))
	for _, w := range worlds {
		levels := ComputeProgress(w.Games, sessions)

		s := models.WorldSummary{
			Area:        w.Area,
			WorldNumber: w.Number,
			WorldName:   w.Name,
			Label:       fmt.Sprintf("World %d", w.Number),
			Color:       w.Color,
			TotalLevels: len(levels),
			MaxStars:    3 * len(levels),
		}
		for _, lv := range levels {
			if lv.State == models.NodeCompleted {
				s.CompletedLevels++
				s.TotalStars += lv.Stars
			}
		}
		if s.TotalLevels > 0 {
			s.ProgressPercent = 100 * float64(s.CompletedLevels) / float64(s.TotalLevels)
		}
		summaries = append(summaries, s)
	}
	return summaries
}
