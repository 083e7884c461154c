package jobs

import (
	"github.com/eyeradar/lexiquest/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	pool         *worker.Pool
	gamification worker.GamificationServiceInterface
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(pool *worker.Pool, gamification worker.GamificationServiceInterface) JobQueue {
	return &WorkerQueue{
		pool:         pool,
		gamification: gamification,
	}
}

func (q *WorkerQueue) EnqueueSessionProcessing(sessionID string) error {
	q.pool.Submit(&worker.ProcessSessionJob{
		Gamification: q.gamification,
		SessionID:    sessionID,
	})
	return nil
}
