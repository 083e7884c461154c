package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyeradar/lexiquest/internal/models"
)

func TestAll_CoversEveryArea(t *testing.T) {
	seen := make(map[models.DeficitArea]int)
	for _, g := range All() {
		seen[g.DeficitArea]++
	}
	for _, area := range models.DeficitAreas {
		assert.GreaterOrEqual(t, seen[area], 5, "area %s should have games", area)
	}
}

func TestAll_UniqueIDsAndDefaults(t *testing.T) {
	ids := make(map[string]bool)
	for _, g := range All() {
		assert.False(t, ids[g.ID], "duplicate id %s", g.ID)
		ids[g.ID] = true
		assert.Equal(t, 10, g.DifficultyLevels)
		assert.LessOrEqual(t, g.AgeRangeMin, g.AgeRangeMax)
	}
}

func TestByID(t *testing.T) {
	g, ok := ByID("sound_safari")
	require.True(t, ok)
	assert.Equal(t, "Sound Safari", g.Name)
	assert.Equal(t, models.PhonologicalAwareness, g.DeficitArea)

	_, ok = ByID("nope")
	assert.False(t, ok)
}

func TestByAreaForAge(t *testing.T) {
	// dual_task_challenge starts at age 9 and must be filtered out for
	// a 7 year old.
	for _, g := range ByAreaForAge(models.WorkingMemory, 7) {
		assert.NotEqual(t, "dual_task_challenge", g.ID)
	}

	var found bool
	for _, g := range ByAreaForAge(models.WorkingMemory, 10) {
		if g.ID == "dual_task_challenge" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestResolve_DropsUnknownIDs(t *testing.T) {
	games := Resolve([]string{"sound_safari", "ghost_game", "word_ladder"})
	require.Len(t, games, 2)
	assert.Equal(t, "sound_safari", games[0].ID)
	assert.Equal(t, "word_ladder", games[1].ID)
}

func TestResolve_PreservesOrder(t *testing.T) {
	games := Resolve([]string{"word_ladder", "sound_safari"})
	require.Len(t, games, 2)
	assert.Equal(t, "word_ladder", games[0].ID)
}
