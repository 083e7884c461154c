package adventure

import "github.com/eyeradar/lexiquest/internal/models"

// BuildWorldMap assembles the full render payload for one world:
// progress-aware nodes laid out on the canvas, the connective road,
// the traveled portion of the road, and seeded scenery. worldIndex
// seeds the decorations so sibling worlds look distinct.
func BuildWorldMap(world World, worldIndex int, sessions []models.Session, theme models.ThemeConfig, cfg Config) models.WorldMap {
	levels := ComputeProgress(world.Games, sessions)
	nodes := BuildMapNodes(levels, cfg)

	positions := make([]models.Position, len(nodes))
	for i := range nodes {
		positions[i] = nodes[i].Position
	}

	m := models.WorldMap{
		Area:        world.Area,
		WorldNumber: world.Number,
		WorldName:   world.Name,
		Color:       world.Color,
		Theme:       theme,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Nodes:       nodes,
		Road:        RoadPath(positions),
		Decorations: WorldDecorations(worldIndex, cfg.Width, cfg.Height),
	}

	if cur := CurrentIndex(nodes); cur >= 0 {
		m.RoadToCurrent = PartialRoadPath(positions, cur)
	} else if len(positions) > 0 {
		m.RoadToCurrent = m.Road
	}
	return m
}
