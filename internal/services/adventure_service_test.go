package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/eyeradar/lexiquest/internal/errors"
	"github.com/eyeradar/lexiquest/internal/models"
	"github.com/eyeradar/lexiquest/internal/testutil/mocks"
)

func adventureTestStudent() *models.Student {
	return &models.Student{
		ID:        "st-1",
		Name:      "Ada",
		Age:       8,
		Interests: []string{"space"},
		Diagnostic: models.Diagnostic{
			DyslexiaType:  "phonological",
			SeverityLevel: "moderate",
		},
	}
}

func TestCreateAdventure_ArchivesPreviousAndResolvesGames(t *testing.T) {
	adventureRepo := new(mocks.MockAdventureRepository)
	studentRepo := new(mocks.MockStudentRepository)
	svc := NewAdventureService(adventureRepo, studentRepo, nil)

	studentRepo.On("Get", mock.Anything, "st-1").Return(adventureTestStudent(), nil)
	adventureRepo.On("ArchiveActive", mock.Anything, "st-1").Return(nil)

	var inserted models.Adventure
	adventureRepo.On("Insert", mock.Anything, mock.AnythingOfType("models.Adventure")).
		Run(func(args mock.Arguments) { inserted = args.Get(1).(models.Adventure) }).
		Return(nil)

	got, err := svc.CreateAdventure(context.Background(), AdventureInput{
		StudentID: "st-1",
		Title:     "Space Quest",
		Worlds: []models.AdventureWorld{
			{
				DeficitArea: string(models.PhonologicalAwareness),
				WorldNumber: 9,
				GameIDs:     []string{"sound_safari", "bogus_game", "rhyme_time_race"},
			},
		},
	})
	require.NoError(t, err)

	adventureRepo.AssertCalled(t, "ArchiveActive", mock.Anything, "st-1")
	assert.Equal(t, models.AdventureActive, got.Status)
	assert.Equal(t, got.ID, inserted.ID)

	// Unknown games are dropped and numbering is rewritten.
	require.Len(t, got.Worlds, 1)
	assert.Equal(t, 1, got.Worlds[0].WorldNumber)
	assert.Equal(t, []string{"sound_safari", "rhyme_time_race"}, got.Worlds[0].GameIDs)
}

func TestCreateAdventure_RejectsEmptyWorlds(t *testing.T) {
	adventureRepo := new(mocks.MockAdventureRepository)
	studentRepo := new(mocks.MockStudentRepository)
	svc := NewAdventureService(adventureRepo, studentRepo, nil)

	studentRepo.On("Get", mock.Anything, "st-1").Return(adventureTestStudent(), nil)

	_, err := svc.CreateAdventure(context.Background(), AdventureInput{StudentID: "st-1"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	adventureRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateAdventure_ThemeDefaultsFromInterests(t *testing.T) {
	adventureRepo := new(mocks.MockAdventureRepository)
	studentRepo := new(mocks.MockStudentRepository)
	svc := NewAdventureService(adventureRepo, studentRepo, nil)

	studentRepo.On("Get", mock.Anything, "st-1").Return(adventureTestStudent(), nil)
	adventureRepo.On("ArchiveActive", mock.Anything, "st-1").Return(nil)
	adventureRepo.On("Insert", mock.Anything, mock.AnythingOfType("models.Adventure")).Return(nil)

	got, err := svc.CreateAdventure(context.Background(), AdventureInput{
		StudentID: "st-1",
		Worlds: []models.AdventureWorld{
			{DeficitArea: string(models.PhonologicalAwareness), GameIDs: []string{"sound_safari"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "space", got.Theme.PrimaryInterest)
	assert.Equal(t, "Ada's Adventure", got.Title)
}

func TestSuggest_FallsBackToBuilderWhenAIFails(t *testing.T) {
	adventureRepo := new(mocks.MockAdventureRepository)
	studentRepo := new(mocks.MockStudentRepository)
	ai := new(mocks.MockAIClient)
	svc := NewAdventureService(adventureRepo, studentRepo, ai)

	studentRepo.On("Get", mock.Anything, "st-1").Return(adventureTestStudent(), nil)
	ai.On("Enabled").Return(true)
	ai.On("SuggestAdventure", mock.Anything, mock.AnythingOfType("models.Student"), "phonological", "moderate", 8).
		Return(nil, fmt.Errorf("upstream timeout"))

	suggestion, err := svc.Suggest(context.Background(), SuggestInput{StudentID: "st-1"})
	require.NoError(t, err)
	require.NotEmpty(t, suggestion.SuggestedWorlds)

	// Phonological profile leads with the phonological world.
	assert.Equal(t, string(models.PhonologicalAwareness), suggestion.SuggestedWorlds[0].DeficitArea)
}

func TestSuggest_UsesAIWhenAvailable(t *testing.T) {
	adventureRepo := new(mocks.MockAdventureRepository)
	studentRepo := new(mocks.MockStudentRepository)
	ai := new(mocks.MockAIClient)
	svc := NewAdventureService(adventureRepo, studentRepo, ai)

	studentRepo.On("Get", mock.Anything, "st-1").Return(adventureTestStudent(), nil)
	ai.On("Enabled").Return(true)

	want := &models.AdventureSuggestion{
		SuggestedWorlds: []models.AdventureWorld{
			{DeficitArea: string(models.ReadingFluency), WorldNumber: 1, GameIDs: []string{"speed_reader"}},
		},
		Reasoning: []string{"clinical rationale"},
	}
	ai.On("SuggestAdventure", mock.Anything, mock.AnythingOfType("models.Student"), "surface", "mild", 10).
		Return(want, nil)

	suggestion, err := svc.Suggest(context.Background(), SuggestInput{
		StudentID:    "st-1",
		DyslexiaType: "surface",
		Severity:     "mild",
		Age:          10,
	})
	require.NoError(t, err)
	assert.Equal(t, want, suggestion)
}

func TestStatusAll(t *testing.T) {
	adventureRepo := new(mocks.MockAdventureRepository)
	studentRepo := new(mocks.MockStudentRepository)
	svc := NewAdventureService(adventureRepo, studentRepo, nil)

	studentRepo.On("List", mock.Anything).Return([]models.Student{{ID: "st-1"}, {ID: "st-2"}}, nil)
	adventureRepo.On("GetActive", mock.Anything, "st-1").Return(&models.Adventure{
		ID:     "adv-1",
		Title:  "Space Quest",
		Worlds: []models.AdventureWorld{{}, {}},
	}, nil)
	adventureRepo.On("GetActive", mock.Anything, "st-2").Return(nil, sql.ErrNoRows)

	statuses, err := svc.StatusAll(context.Background())
	require.NoError(t, err)

	assert.True(t, statuses["st-1"].HasAdventure)
	assert.Equal(t, 2, statuses["st-1"].WorldCount)
	assert.Equal(t, "Space Quest", statuses["st-1"].Title)
	assert.False(t, statuses["st-2"].HasAdventure)
}

func TestGamesForArea_RejectsUnknownArea(t *testing.T) {
	svc := NewAdventureService(nil, nil, nil)

	_, err := svc.GamesForArea(context.Background(), "made_up_area", 8, "moderate")
	require.Error(t, err)

	games, err := svc.GamesForArea(context.Background(), models.PhonologicalAwareness, 8, "moderate")
	require.NoError(t, err)
	assert.NotEmpty(t, games)
}
