package adventure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyeradar/lexiquest/internal/models"
)

func overworldTestWorlds() []World {
	return []World{
		{Area: models.PhonologicalAwareness, Number: 1, Name: "Sound Kingdom", Color: "#6366f1", Games: testGames("a", "b")},
		{Area: models.RapidNaming, Number: 2, Name: "Speed Valley", Color: "#f59e0b", Games: testGames("c", "d")},
		{Area: models.WorkingMemory, Number: 3, Name: "Memory Mountains", Color: "#8b5cf6", Games: testGames("e")},
	}
}

func TestBuildOverworld_FirstWorldAlwaysUnlocked(t *testing.T) {
	ow := BuildOverworld(overworldTestWorlds(), nil, 1000, 500)
	require.Len(t, ow.Nodes, 3)
	assert.True(t, ow.Nodes[0].Unlocked)
	assert.False(t, ow.Nodes[1].Unlocked)
	assert.False(t, ow.Nodes[2].Unlocked)
}

func TestBuildOverworld_UnlocksAfterCompletion(t *testing.T) {
	sessions := []models.Session{
		completedSession("a", 90),
		completedSession("b", 70),
	}
	ow := BuildOverworld(overworldTestWorlds(), sessions, 1000, 500)
	assert.True(t, ow.Nodes[0].Unlocked)
	assert.True(t, ow.Nodes[1].Unlocked)
	assert.False(t, ow.Nodes[2].Unlocked)
}

func TestBuildOverworld_RoadAndGeometry(t *testing.T) {
	ow := BuildOverworld(overworldTestWorlds(), nil, 1000, 500)
	assert.Equal(t, 1000.0, ow.Width)
	assert.Equal(t, 500.0, ow.Height)
	assert.NotEmpty(t, ow.Road)

	for _, n := range ow.Nodes {
		assert.GreaterOrEqual(t, n.X, 0.0)
		assert.LessOrEqual(t, n.X, 1000.0)
		assert.GreaterOrEqual(t, n.Y, 0.0)
		assert.LessOrEqual(t, n.Y, 500.0)
	}
}

func TestBuildOverworld_ManyWorldsDistinctPositions(t *testing.T) {
	// More worlds than hand-tuned anchors: wrapped slots must not land
	// on top of an earlier world.
	var worlds []World
	for i := 0; i < 9; i++ {
		worlds = append(worlds, World{
			Area:   models.PhonologicalAwareness,
			Number: i + 1,
			Name:   "World",
			Games:  testGames("a"),
		})
	}
	ow := BuildOverworld(worlds, nil, 1000, 500)
	require.Len(t, ow.Nodes, 9)

	seen := map[[2]float64]bool{}
	for _, n := range ow.Nodes {
		pos := [2]float64{n.X, n.Y}
		assert.False(t, seen[pos], "duplicate position %v", pos)
		seen[pos] = true

		assert.GreaterOrEqual(t, n.X, 0.0)
		assert.LessOrEqual(t, n.X, 1000.0)
		assert.GreaterOrEqual(t, n.Y, 0.0)
		assert.LessOrEqual(t, n.Y, 500.0)
	}
}

func TestBuildOverworld_Deterministic(t *testing.T) {
	worlds := overworldTestWorlds()
	assert.Equal(t, BuildOverworld(worlds, nil, 1000, 500), BuildOverworld(worlds, nil, 1000, 500))
}

func TestBuildOverworld_Empty(t *testing.T) {
	ow := BuildOverworld(nil, nil, 1000, 500)
	assert.Empty(t, ow.Nodes)
	assert.Equal(t, "", ow.Road)
}
