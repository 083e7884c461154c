package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyeradar/lexiquest/internal/models"
)

func testStudent() models.Student {
	return models.Student{
		ID:   "st-1",
		Name: "Ada",
		Age:  8,
		Diagnostic: models.Diagnostic{
			DyslexiaType:          DyslexiaPhonological,
			SeverityLevel:         SeverityModerate,
			PhonologicalSeverity:  5,
			RapidNamingSeverity:   2,
			WorkingMemorySeverity: 3,
			VisualSeverity:        2,
			FluencySeverity:       4,
			ComprehensionSeverity: 3,
		},
	}
}

func TestSuggest_PhonologicalProfilePrioritizesSoundWork(t *testing.T) {
	result := Suggest(testStudent(), Options{})
	require.NotEmpty(t, result.SuggestedWorlds)

	first := result.SuggestedWorlds[0]
	assert.Equal(t, string(models.PhonologicalAwareness), first.DeficitArea)
	assert.Equal(t, 1, first.WorldNumber)
	assert.Equal(t, "Sound Kingdom", first.WorldName)
	// Moderate severity caps each world at 4 games.
	assert.LessOrEqual(t, len(first.GameIDs), 4)
	assert.NotEmpty(t, result.Reasoning)
}

func TestSuggest_SequentialWorldNumbers(t *testing.T) {
	result := Suggest(testStudent(), Options{})
	for i, w := range result.SuggestedWorlds {
		assert.Equal(t, i+1, w.WorldNumber)
		assert.NotEmpty(t, w.GameIDs)
		assert.NotEmpty(t, w.Color)
	}
	assert.LessOrEqual(t, len(result.SuggestedWorlds), 6)
	assert.GreaterOrEqual(t, len(result.SuggestedWorlds), 2)
}

func TestSuggest_SevereNarrowsAndExcludes(t *testing.T) {
	student := testStudent()
	student.Diagnostic.SeverityLevel = SeveritySevere

	result := Suggest(student, Options{})
	for _, w := range result.SuggestedWorlds {
		assert.LessOrEqual(t, len(w.GameIDs), 3)
		for _, id := range w.GameIDs {
			assert.NotContains(t, []string{"dual_task_challenge", "backward_spell", "inference_detective"}, id)
		}
	}
}

func TestSuggest_Overrides(t *testing.T) {
	result := Suggest(testStudent(), Options{DyslexiaType: DyslexiaVisual, Severity: SeverityMild, Age: 10})
	require.NotEmpty(t, result.SuggestedWorlds)
	assert.Equal(t, string(models.VisualProcessing), result.SuggestedWorlds[0].DeficitArea)
	assert.LessOrEqual(t, len(result.SuggestedWorlds[0].GameIDs), 5)
}

func TestSuggest_UnknownTypeFallsBackToUnspecified(t *testing.T) {
	student := testStudent()
	student.Diagnostic.DyslexiaType = "galactic"
	student.Diagnostic.SeverityLevel = "catastrophic"

	result := Suggest(student, Options{})
	assert.NotEmpty(t, result.SuggestedWorlds)
}

func TestSuggest_Deterministic(t *testing.T) {
	student := testStudent()
	assert.Equal(t, Suggest(student, Options{}), Suggest(student, Options{}))
}

func TestThemeFromInterests(t *testing.T) {
	theme := ThemeFromInterests([]string{"Ocean Life", "dinosaurs"})
	assert.Equal(t, "aquatic", theme.ColorPalette)
	assert.Equal(t, "underwater", theme.DecorationStyle)
	assert.Equal(t, "ocean life", theme.PrimaryInterest)

	// Primary interest without a match falls through to secondaries.
	theme = ThemeFromInterests([]string{"chess", "space travel"})
	assert.Equal(t, "cosmic", theme.ColorPalette)

	theme = ThemeFromInterests(nil)
	assert.Equal(t, models.DefaultTheme(), theme)

	theme = ThemeFromInterests([]string{"knitting"})
	assert.Equal(t, "default", theme.ColorPalette)
	assert.Equal(t, "knitting", theme.PrimaryInterest)
}

func TestGamesForArea(t *testing.T) {
	games := GamesForArea(models.WorkingMemory, 10, SeveritySevere)
	require.NotEmpty(t, games)
	for _, g := range games {
		assert.Equal(t, models.WorkingMemory, g.DeficitArea)
		assert.NotEqual(t, "dual_task_challenge", g.ID)
		assert.NotEqual(t, "backward_spell", g.ID)
	}

	mild := GamesForArea(models.WorkingMemory, 10, SeverityMild)
	assert.Greater(t, len(mild), len(games))
}
