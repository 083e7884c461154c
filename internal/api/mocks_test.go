package api_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/eyeradar/lexiquest/internal/models"
	"github.com/eyeradar/lexiquest/internal/services"
)

// Service mocks live here rather than in testutil/mocks: the service
// packages' own tests import testutil/mocks, so mocks there cannot
// depend on the services package.

type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) CreateStudent(ctx context.Context, student models.Student) (*models.Student, error) {
	args := m.Called(ctx, student)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) ListStudents(ctx context.Context) ([]models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Student), args.Error(1)
}

func (m *MockStudentService) UpdateStudent(ctx context.Context, id string, student models.Student) (*models.Student, error) {
	args := m.Called(ctx, id, student)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) PatchStudent(ctx context.Context, id string, patch services.StudentPatch) (*models.Student, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) DeleteStudent(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStudentService) ImportAssessment(ctx context.Context, id string, assessment models.Assessment) (*models.Student, error) {
	args := m.Called(ctx, id, assessment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) RecordSession(ctx context.Context, session models.Session) (*models.Session, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, id string) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) ListSessions(ctx context.Context, filter models.SessionFilter) ([]models.Session, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Session), args.Int(1), args.Error(2)
}

type MockMapService struct {
	mock.Mock
}

func (m *MockMapService) WorldSummaries(ctx context.Context, studentID string) ([]models.WorldSummary, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorldSummary), args.Error(1)
}

func (m *MockMapService) WorldMap(ctx context.Context, studentID string, area models.DeficitArea) (*services.WorldMapPayload, error) {
	args := m.Called(ctx, studentID, area)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.WorldMapPayload), args.Error(1)
}

func (m *MockMapService) Overworld(ctx context.Context, studentID string) (*models.Overworld, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Overworld), args.Error(1)
}

type MockAdventureService struct {
	mock.Mock
}

func (m *MockAdventureService) CreateAdventure(ctx context.Context, input services.AdventureInput) (*models.Adventure, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Adventure), args.Error(1)
}

func (m *MockAdventureService) GetAdventure(ctx context.Context, id string) (*models.Adventure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Adventure), args.Error(1)
}

func (m *MockAdventureService) GetActiveAdventure(ctx context.Context, studentID string) (*models.Adventure, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Adventure), args.Error(1)
}

func (m *MockAdventureService) ListAdventures(ctx context.Context, studentID string) ([]models.Adventure, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Adventure), args.Error(1)
}

func (m *MockAdventureService) UpdateAdventure(ctx context.Context, id string, input services.AdventureInput) (*models.Adventure, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Adventure), args.Error(1)
}

func (m *MockAdventureService) DeleteAdventure(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdventureService) StatusAll(ctx context.Context) (map[string]models.AdventureStatusEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.AdventureStatusEntry), args.Error(1)
}

func (m *MockAdventureService) Suggest(ctx context.Context, input services.SuggestInput) (*models.AdventureSuggestion, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdventureSuggestion), args.Error(1)
}

func (m *MockAdventureService) GamesForArea(ctx context.Context, area models.DeficitArea, age int, severity string) ([]models.GameDefinition, error) {
	args := m.Called(ctx, area, age, severity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GameDefinition), args.Error(1)
}

type MockGamificationService struct {
	mock.Mock
}

func (m *MockGamificationService) Summary(ctx context.Context, studentID string) (*models.GamificationSummary, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GamificationSummary), args.Error(1)
}

func (m *MockGamificationService) ProcessSessionCompletion(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Overview(ctx context.Context, studentID string) (*models.AnalyticsOverview, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalyticsOverview), args.Error(1)
}

func (m *MockAnalyticsService) Report(ctx context.Context, studentID string) (*models.StudentReport, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentReport), args.Error(1)
}
