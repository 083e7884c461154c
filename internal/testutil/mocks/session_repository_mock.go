package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/eyeradar/lexiquest/internal/models"
)

// MockSessionRepository is a mock implementation of repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) List(ctx context.Context, filter models.SessionFilter) ([]models.Session, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}

func (m *MockSessionRepository) Count(ctx context.Context, filter models.SessionFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockSessionRepository) Insert(ctx context.Context, session models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Update(ctx context.Context, session models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) StudentStats(ctx context.Context, studentID string) (*models.StudentStats, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentStats), args.Error(1)
}

func (m *MockSessionRepository) AreaStats(ctx context.Context, studentID string) (map[models.DeficitArea]models.AreaStats, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[models.DeficitArea]models.AreaStats), args.Error(1)
}

func (m *MockSessionRepository) AccuracyTrend(ctx context.Context, studentID string, area models.DeficitArea, limit int) ([]float64, error) {
	args := m.Called(ctx, studentID, area, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockSessionRepository) CountCompletedOnDate(ctx context.Context, studentID, date string) (int, error) {
	args := m.Called(ctx, studentID, date)
	return args.Int(0), args.Error(1)
}

func (m *MockSessionRepository) AreasPlayed(ctx context.Context, studentID string) (int, error) {
	args := m.Called(ctx, studentID)
	return args.Int(0), args.Error(1)
}
