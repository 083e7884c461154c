package adventure

import (
	"math"

	"github.com/eyeradar/lexiquest/internal/models"
)

// Hand-tuned overworld anchors as canvas percentages, one per world
// slot, tracing a winding route from bottom-left to top-right.
var overworldAnchors = [][2]float64{
	{8, 70}, {26, 42}, {44, 66}, {62, 38}, {79, 62}, {92, 32},
}

// BuildOverworld lays out the world-selection screen. Worlds unlock in
// order: the first is always open, each later one opens once every
// level of the world before it is completed. The connective road uses
// the organic synthesizer so it reads as a drawn trail.
func BuildOverworld(worlds []World, sessions []models.Session, w, h float64) models.Overworld {
	ow := models.Overworld{Width: w, Height: h}

	prevCompleted := true
	var points []models.Position
	for i, world := range worlds {
		x, y := anchorFor(i)
		pos := models.Position{X: x / 100 * w, Y: y / 100 * h}
		points = append(points, pos)

		unlocked := i == 0 || prevCompleted
		ow.Nodes = append(ow.Nodes, models.OverworldNode{
			Area:        world.Area,
			WorldNumber: world.Number,
			WorldName:   world.Name,
			Color:       world.Color,
			X:           pos.X,
			Y:           pos.Y,
			Unlocked:    unlocked,
		})

		levels := ComputeProgress(world.Games, sessions)
		prevCompleted = len(levels) > 0
		for _, lv := range levels {
			if lv.State != models.NodeCompleted {
				prevCompleted = false
				break
			}
		}
	}

	ow.Road = OrganicPath(points)
	return ow
}

// anchorFor returns the canvas-percentage anchor for world slot i.
// Beyond the hand-tuned set the route wraps, so each lap over the
// anchors shifts its positions to keep every world node distinct.
func anchorFor(i int) (x, y float64) {
	anchor := overworldAnchors[i%len(overworldAnchors)]
	x, y = anchor[0], anchor[1]
	lap := i / len(overworldAnchors)
	if lap > 0 {
		x = math.Mod(x+float64(lap)*7, 88) + 4
		y = math.Mod(y+float64(lap)*19, 80) + 8
	}
	return x, y
}
