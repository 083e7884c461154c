package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/eyeradar/lexiquest/internal/logger"
	"github.com/eyeradar/lexiquest/internal/models"
	"github.com/eyeradar/lexiquest/internal/repository"
)

type adventureRepository struct {
	db *sql.DB
}

// NewAdventureRepository creates a new AdventureRepository implementation
func NewAdventureRepository(db *sql.DB) repository.AdventureRepository {
	return &adventureRepository{db: db}
}

const adventureColumns = `id, student_id, created_by, title, worlds, theme_config, status, created_at, updated_at`

func scanAdventure(row interface{ Scan(...any) error }) (*models.Adventure, error) {
	var a models.Adventure
	var worlds, theme string
	err := row.Scan(&a.ID, &a.StudentID, &a.CreatedBy, &a.Title, &worlds, &theme,
		&a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSON(worlds, &a.Worlds); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(theme, &a.Theme); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adventureRepository) Get(ctx context.Context, id string) (*models.Adventure, error) {
	log := logger.FromContext(ctx).WithPrefix("adventure_repo")
	log.Debug("getting adventure: id=%s", id)

	a, err := scanAdventure(r.db.QueryRowContext(ctx,
		`SELECT `+adventureColumns+` FROM adventures WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("adventure not found: id=%s", id)
		} else {
			log.Error("failed to get adventure: %v", err)
		}
		return nil, err
	}
	return a, nil
}

func (r *adventureRepository) GetActive(ctx context.Context, studentID string) (*models.Adventure, error) {
	log := logger.FromContext(ctx).WithPrefix("adventure_repo")
	log.Debug("getting active adventure: student_id=%s", studentID)

	a, err := scanAdventure(r.db.QueryRowContext(ctx, `
SELECT `+adventureColumns+`
FROM adventures
WHERE student_id = ? AND status = 'active'
ORDER BY created_at DESC
LIMIT 1
`, studentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no active adventure: student_id=%s", studentID)
		} else {
			log.Error("failed to get active adventure: %v", err)
		}
		return nil, err
	}
	return a, nil
}

func (r *adventureRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Adventure, error) {
	log := logger.FromContext(ctx).WithPrefix("adventure_repo")
	log.Debug("listing adventures: student_id=%s", studentID)

	rows, err := r.db.QueryContext(ctx, `
SELECT `+adventureColumns+`
FROM adventures
WHERE student_id = ?
ORDER BY created_at DESC
`, studentID)
	if err != nil {
		log.Error("failed to list adventures: %v", err)
		return nil, err
	}
	defer rows.Close()

	var adventures []models.Adventure
	for rows.Next() {
		a, err := scanAdventure(rows)
		if err != nil {
			log.Error("failed to scan adventure row: %v", err)
			return nil, err
		}
		adventures = append(adventures, *a)
	}
	log.Debug("found %d adventures", len(adventures))
	return adventures, rows.Err()
}

func (r *adventureRepository) Insert(ctx context.Context, a models.Adventure) error {
	log := logger.FromContext(ctx).WithPrefix("adventure_repo")
	log.Debug("inserting adventure: id=%s, student_id=%s", a.ID, a.StudentID)

	worlds, theme, err := encodeAdventure(a)
	if err != nil {
		log.Error("failed to encode adventure: %v", err)
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO adventures (id, student_id, created_by, title, worlds, theme_config, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, a.ID, a.StudentID, a.CreatedBy, a.Title, worlds, theme, a.Status, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		log.Error("failed to insert adventure: %v", err)
	}
	return err
}

func (r *adventureRepository) Update(ctx context.Context, a models.Adventure) error {
	log := logger.FromContext(ctx).WithPrefix("adventure_repo")
	log.Debug("updating adventure: id=%s", a.ID)

	worlds, theme, err := encodeAdventure(a)
	if err != nil {
		log.Error("failed to encode adventure: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE adventures
SET title = ?, worlds = ?, theme_config = ?, status = ?, updated_at = ?
WHERE id = ?
`, a.Title, worlds, theme, a.Status, a.UpdatedAt, a.ID)
	if err != nil {
		log.Error("failed to update adventure: %v", err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *adventureRepository) ArchiveActive(ctx context.Context, studentID string) error {
	log := logger.FromContext(ctx).WithPrefix("adventure_repo")
	log.Debug("archiving active adventures: student_id=%s", studentID)

	_, err := r.db.ExecContext(ctx, `
UPDATE adventures
SET status = 'archived', updated_at = CURRENT_TIMESTAMP
WHERE student_id = ? AND status = 'active'
`, studentID)
	if err != nil {
		log.Error("failed to archive adventures: %v", err)
	}
	return err
}

func (r *adventureRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithPrefix("adventure_repo")
	log.Debug("deleting adventure: id=%s", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM adventures WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete adventure: %v", err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func encodeAdventure(a models.Adventure) (worlds, theme string, err error) {
	if a.Worlds == nil {
		a.Worlds = []models.AdventureWorld{}
	}
	if worlds, err = marshalJSON(a.Worlds); err != nil {
		return
	}
	theme, err = marshalJSON(a.Theme)
	return
}
