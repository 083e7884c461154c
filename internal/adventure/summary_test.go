package adventure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyeradar/lexiquest/internal/catalog"
	"github.com/eyeradar/lexiquest/internal/models"
)

func TestDefaultWorlds_DropsEmptyAreasAndRenumbers(t *testing.T) {
	// Age 4 excludes most catalog content; every returned world must
	// still be non-empty with sequential numbering.
	worlds := DefaultWorlds(4)
	require.NotEmpty(t, worlds)
	for i, w := range worlds {
		assert.Equal(t, i+1, w.Number)
		assert.NotEmpty(t, w.Games)
		assert.NotEmpty(t, w.Name)
		assert.NotEmpty(t, w.Color)
	}
}

func TestDefaultWorlds_FullCoverageForMidAge(t *testing.T) {
	worlds := DefaultWorlds(8)
	require.Len(t, worlds, len(models.DeficitAreas))
	for i, w := range worlds {
		assert.Equal(t, models.DeficitAreas[i], w.Area)
	}
}

func TestCustomWorlds_ResolvesAndDrops(t *testing.T) {
	authored := []models.AdventureWorld{
		{
			DeficitArea: string(models.PhonologicalAwareness),
			WorldNumber: 1,
			WorldName:   "Sound Kingdom",
			Color:       "#6366f1",
			GameIDs:     []string{"sound_safari", "not_a_game", "rhyme_time_race"},
		},
		{
			DeficitArea: string(models.Comprehension),
			WorldNumber: 2,
			GameIDs:     []string{"ghost_one", "ghost_two"},
		},
	}

	worlds := CustomWorlds(authored)
	require.Len(t, worlds, 1)
	assert.Len(t, worlds[0].Games, 2)
	assert.Equal(t, "sound_safari", worlds[0].Games[0].ID)
}

func TestCustomWorlds_FillsMissingMetadata(t *testing.T) {
	worlds := CustomWorlds([]models.AdventureWorld{{
		DeficitArea: string(models.RapidNaming),
		WorldNumber: 1,
		GameIDs:     []string{"speed_namer"},
	}})
	require.Len(t, worlds, 1)
	assert.Equal(t, "Speed Valley", worlds[0].Name)
	assert.Equal(t, "#f59e0b", worlds[0].Color)
}

func TestSummaries_Rollup(t *testing.T) {
	phono := catalog.ByAreaForAge(models.PhonologicalAwareness, 8)
	require.NotEmpty(t, phono)

	sessions := []models.Session{
		completedSession(phono[0].ID, 90),
		completedSession(phono[1].ID, 65),
	}

	worlds := []World{{
		Area: models.PhonologicalAwareness, Number: 1,
		Name: "Sound Kingdom", Color: "#6366f1", Games: phono,
	}}
	summaries := Summaries(worlds, sessions)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, len(phono), s.TotalLevels)
	assert.Equal(t, 2, s.CompletedLevels)
	assert.Equal(t, 5, s.TotalStars)
	assert.Equal(t, 3*len(phono), s.MaxStars)
	assert.LessOrEqual(t, s.TotalStars, s.MaxStars)
	assert.InDelta(t, 100*2/float64(len(phono)), s.ProgressPercent, 0.001)
	assert.Equal(t, "World 1", s.Label)
}

func TestSummaries_OnlyPopulatedAreasAppear(t *testing.T) {
	authored := []models.AdventureWorld{
		{DeficitArea: string(models.PhonologicalAwareness), WorldNumber: 1, GameIDs: []string{"sound_safari"}},
		{DeficitArea: string(models.Comprehension), WorldNumber: 2, GameIDs: []string{"question_quest"}},
		{DeficitArea: string(models.WorkingMemory), WorldNumber: 3, GameIDs: []string{"unknown_game"}},
	}
	summaries := Summaries(CustomWorlds(authored), nil)
	require.Len(t, summaries, 2)
	assert.Equal(t, models.PhonologicalAwareness, summaries[0].Area)
	assert.Equal(t, models.Comprehension, summaries[1].Area)
}

func TestSummaries_EmptyInput(t *testing.T) {
	assert.Empty(t, Summaries(nil, nil))
}
