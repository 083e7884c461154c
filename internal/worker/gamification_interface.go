package worker

import "context"

// GamificationServiceInterface defines the interface for awarding
// points, streaks, and badges after a session completes.
// This avoids import cycles by not importing the services package
type GamificationServiceInterface interface {
	ProcessSessionCompletion(ctx context.Context, sessionID string) error
}
