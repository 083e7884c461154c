package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/eyeradar/lexiquest/internal/models"
)

// MockAdventureRepository is a mock implementation of repository.AdventureRepository
type MockAdventureRepository struct {
	mock.Mock
}

func (m *MockAdventureRepository) Get(ctx context.Context, id string) (*models.Adventure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Adventure), args.Error(1)
}

func (m *MockAdventureRepository) GetActive(ctx context.Context, studentID string) (*models.Adventure, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Adventure), args.Error(1)
}

func (m *MockAdventureRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Adventure, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Adventure), args.Error(1)
}

func (m *MockAdventureRepository) Insert(ctx context.Context, adventure models.Adventure) error {
	args := m.Called(ctx, adventure)
	return args.Error(0)
}

func (m *MockAdventureRepository) Update(ctx context.Context, adventure models.Adventure) error {
	args := m.Called(ctx, adventure)
	return args.Error(0)
}

func (m *MockAdventureRepository) ArchiveActive(ctx context.Context, studentID string) error {
	args := m.Called(ctx, studentID)
	return args.Error(0)
}

func (m *MockAdventureRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
