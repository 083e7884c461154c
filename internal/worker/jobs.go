package worker

import (
	"context"
)

// ProcessSessionJob awards points, streaks, and badges for a completed
// session. Session completion stays fast because this runs off the
// request path.
type ProcessSessionJob struct {
	Gamification GamificationServiceInterface
	SessionID    string
}

func (j *ProcessSessionJob) Name() string { return "process_session" }

func (j *ProcessSessionJob) Run(ctx context.Context) error {
	return j.Gamification.ProcessSessionCompletion(ctx, j.SessionID)
}
