package aiclient

import (
	"context"

	"github.com/eyeradar/lexiquest/internal/models"
)

// ClientInterface defines the interface for AI adventure suggestions.
// This interface enables testability by allowing mock implementations.
type ClientInterface interface {
	Enabled() bool
	SuggestAdventure(ctx context.Context, student models.Student, dyslexiaType, severity string, age int) (*models.AdventureSuggestion, error)
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)
