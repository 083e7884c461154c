package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueSessionProcessing(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}
