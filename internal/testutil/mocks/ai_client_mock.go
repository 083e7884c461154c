package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/eyeradar/lexiquest/internal/models"
)

// MockAIClient is a mock implementation of aiclient.ClientInterface
type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockAIClient) SuggestAdventure(ctx context.Context, student models.Student, dyslexiaType, severity string, age int) (*models.AdventureSuggestion, error) {
	args := m.Called(ctx, student, dyslexiaType, severity, age)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdventureSuggestion), args.Error(1)
}
