package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/eyeradar/lexiquest/internal/logger"
	"github.com/eyeradar/lexiquest/internal/models"
	"github.com/eyeradar/lexiquest/internal/repository"
)

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository implementation
func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

const sessionColumns = `id, student_id, game_id, game_name, deficit_area, status, accuracy,
       correct_count, total_items, points_earned, started_at, completed_at`

func scanSession(row interface{ Scan(...any) error }) (*models.Session, error) {
	var s models.Session
	var completedAt sql.NullTime
	err := row.Scan(&s.ID, &s.StudentID, &s.GameID, &s.GameName, &s.DeficitArea,
		&s.Status, &s.Accuracy, &s.CorrectCount, &s.TotalItems, &s.PointsEarned,
		&s.StartedAt, &completedAt)
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		s.CompletedAt = &completedAt.Time
	}
	return &s, nil
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("getting session: id=%s", id)

	s, err := scanSession(r.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("session not found: id=%s", id)
		} else {
			log.Error("failed to get session: %v", err)
		}
		return nil, err
	}
	return s, nil
}

func applySessionFilter(query squirrel.SelectBuilder, filter models.SessionFilter) squirrel.SelectBuilder {
	if filter.StudentID != "" {
		query = query.Where(squirrel.Eq{"student_id": filter.StudentID})
	}
	if filter.GameID != "" {
		query = query.Where(squirrel.Eq{"game_id": filter.GameID})
	}
	if filter.Area != "" {
		query = query.Where(squirrel.Eq{"deficit_area": filter.Area})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	return query
}

func (r *sessionRepository) List(ctx context.Context, filter models.SessionFilter) ([]models.Session, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("listing sessions with filter: student_id=%s, game_id=%s, area=%s, status=%s",
		filter.StudentID, filter.GameID, filter.Area, filter.Status)

	query := applySessionFilter(sqlBuilder.Select(
		"id", "student_id", "game_id", "game_name", "deficit_area", "status", "accuracy",
		"correct_count", "total_items", "points_earned", "started_at", "completed_at",
	).From("sessions"), filter)

	orderDir := "DESC"
	if filter.OrderDir == "ASC" {
		orderDir = "ASC"
	}
	query = query.OrderBy("started_at " + orderDir)

	// Limit 0 pages with a default; a negative limit returns everything.
	limit := filter.Limit
	if limit == 0 {
		limit = 200
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if limit > 0 {
		query = query.Limit(uint64(limit)).Offset(uint64(offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			log.Error("failed to scan session row: %v", err)
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	log.Debug("found %d sessions", len(sessions))
	return sessions, rows.Err()
}

func (r *sessionRepository) Count(ctx context.Context, filter models.SessionFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")

	query := applySessionFilter(sqlBuilder.Select("COUNT(*)").From("sessions"), filter)
	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count sessions: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *sessionRepository) Insert(ctx context.Context, s models.Session) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("inserting session: id=%s, student_id=%s, game_id=%s", s.ID, s.StudentID, s.GameID)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO sessions (
    id, student_id, game_id, game_name, deficit_area, status, accuracy,
    correct_count, total_items, points_earned, started_at, completed_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, s.ID, s.StudentID, s.GameID, s.GameName, s.DeficitArea, s.Status, s.Accuracy,
		s.CorrectCount, s.TotalItems, s.PointsEarned, s.StartedAt, s.CompletedAt)
	if err != nil {
		log.Error("failed to insert session: %v", err)
	}
	return err
}

func (r *sessionRepository) Update(ctx context.Context, s models.Session) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("updating session: id=%s, status=%s", s.ID, s.Status)

	res, err := r.db.ExecContext(ctx, `
UPDATE sessions
SET status = ?, accuracy = ?, correct_count = ?, total_items = ?, points_earned = ?, completed_at = ?
WHERE id = ?
`, s.Status, s.Accuracy, s.CorrectCount, s.TotalItems, s.PointsEarned, s.CompletedAt, s.ID)
	if err != nil {
		log.Error("failed to update session: %v", err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *sessionRepository) StudentStats(ctx context.Context, studentID string) (*models.StudentStats, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("computing student stats: student_id=%s", studentID)

	var stats models.StudentStats
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*),
       COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0),
       COALESCE(SUM(CASE WHEN status = 'completed' THEN correct_count ELSE 0 END), 0),
       COALESCE(AVG(CASE WHEN status = 'completed' THEN accuracy END), 0)
FROM sessions
WHERE student_id = ?
`, studentID).Scan(&stats.TotalSessions, &stats.CompletedSessions, &stats.TotalCorrect, &stats.AvgAccuracy)
	if err != nil {
		log.Error("failed to compute student stats: %v", err)
		return nil, err
	}
	return &stats, nil
}

func (r *sessionRepository) AreaStats(ctx context.Context, studentID string) (map[models.DeficitArea]models.AreaStats, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("computing area stats: student_id=%s", studentID)

	rows, err := r.db.QueryContext(ctx, `
SELECT deficit_area, COUNT(*), COALESCE(AVG(accuracy), 0)
FROM sessions
WHERE student_id = ? AND status = 'completed'
GROUP BY deficit_area
`, studentID)
	if err != nil {
		log.Error("failed to compute area stats: %v", err)
		return nil, err
	}
	defer rows.Close()

	out := make(map[models.DeficitArea]models.AreaStats)
	for rows.Next() {
		var area string
		var stats models.AreaStats
		if err := rows.Scan(&area, &stats.Sessions, &stats.AvgAccuracy); err != nil {
			log.Error("failed to scan area stats row: %v", err)
			return nil, err
		}
		out[models.DeficitArea(area)] = stats
	}
	return out, rows.Err()
}

func (r *sessionRepository) AccuracyTrend(ctx context.Context, studentID string, area models.DeficitArea, limit int) ([]float64, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("loading accuracy trend: student_id=%s, area=%s", studentID, area)

	if limit <= 0 {
		limit = 10
	}

	// Most recent first in SQL, reversed so the trend reads oldest to
	// newest.
	rows, err := r.db.QueryContext(ctx, `
SELECT accuracy
FROM sessions
WHERE student_id = ? AND deficit_area = ? AND status = 'completed'
ORDER BY started_at DESC
LIMIT ?
`, studentID, string(area), limit)
	if err != nil {
		log.Error("failed to load accuracy trend: %v", err)
		return nil, err
	}
	defer rows.Close()

	var trend []float64
	for rows.Next() {
		var acc float64
		if err := rows.Scan(&acc); err != nil {
			log.Error("failed to scan accuracy row: %v", err)
			return nil, err
		}
		trend = append(trend, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(trend)-1; i < j; i, j = i+1, j-1 {
		trend[i], trend[j] = trend[j], trend[i]
	}
	return trend, nil
}

func (r *sessionRepository) CountCompletedOnDate(ctx context.Context, studentID, date string) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*)
FROM sessions
WHERE student_id = ? AND status = 'completed' AND date(completed_at) = ?
`, studentID, date).Scan(&count)
	if err != nil {
		log.Error("failed to count sessions for date: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *sessionRepository) AreasPlayed(ctx context.Context, studentID string) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(DISTINCT deficit_area)
FROM sessions
WHERE student_id = ? AND status = 'completed'
`, studentID).Scan(&count)
	if err != nil {
		log.Error("failed to count areas played: %v", err)
		return 0, err
	}
	return count, nil
}
