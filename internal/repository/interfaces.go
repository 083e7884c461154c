package repository

import (
	"context"

	"github.com/eyeradar/lexiquest/internal/models"
)

// StudentRepository handles student profile data access
type StudentRepository interface {
	Get(ctx context.Context, id string) (*models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	Insert(ctx context.Context, student models.Student) error
	Update(ctx context.Context, student models.Student) error
	Delete(ctx context.Context, id string) error
}

// SessionRepository handles play session data access
type SessionRepository interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	List(ctx context.Context, filter models.SessionFilter) ([]models.Session, error)
	Count(ctx context.Context, filter models.SessionFilter) (int, error)
	Insert(ctx context.Context, session models.Session) error
	Update(ctx context.Context, session models.Session) error
	StudentStats(ctx context.Context, studentID string) (*models.StudentStats, error)
	AreaStats(ctx context.Context, studentID string) (map[models.DeficitArea]models.AreaStats, error)
	AccuracyTrend(ctx context.Context, studentID string, area models.DeficitArea, limit int) ([]float64, error)
	CountCompletedOnDate(ctx context.Context, studentID, date string) (int, error)
	AreasPlayed(ctx context.Context, studentID string) (int, error)
}

// AdventureRepository handles teacher-authored adventure data access
type AdventureRepository interface {
	Get(ctx context.Context, id string) (*models.Adventure, error)
	GetActive(ctx context.Context, studentID string) (*models.Adventure, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Adventure, error)
	Insert(ctx context.Context, adventure models.Adventure) error
	Update(ctx context.Context, adventure models.Adventure) error
	ArchiveActive(ctx context.Context, studentID string) error
	Delete(ctx context.Context, id string) error
}
