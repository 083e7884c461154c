package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/eyeradar/lexiquest/internal/logger"
	"github.com/eyeradar/lexiquest/internal/models"
	"github.com/eyeradar/lexiquest/internal/repository"
)

type studentRepository struct {
	db *sql.DB
}

// NewStudentRepository creates a new StudentRepository implementation
func NewStudentRepository(db *sql.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `id, name, age, grade, language, interests, diagnostic, assessment,
       total_points, xp, level, current_streak, longest_streak, last_session_date, badges, created_at`

func scanStudent(row interface{ Scan(...any) error }) (*models.Student, error) {
	var st models.Student
	var interests, diagnostic, badges string
	var assessment sql.NullString

	err := row.Scan(&st.ID, &st.Name, &st.Age, &st.Grade, &st.Language,
		&interests, &diagnostic, &assessment,
		&st.TotalPoints, &st.XP, &st.Level, &st.CurrentStreak, &st.LongestStreak,
		&st.LastSessionDate, &badges, &st.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := unmarshalJSON(interests, &st.Interests); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(diagnostic, &st.Diagnostic); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(badges, &st.Badges); err != nil {
		return nil, err
	}
	if assessment.Valid && assessment.String != "" {
		st.Assessment = &models.Assessment{}
		if err := unmarshalJSON(assessment.String, st.Assessment); err != nil {
			return nil, err
		}
	}
	return &st, nil
}

func (r *studentRepository) Get(ctx context.Context, id string) (*models.Student, error) {
	log := logger.FromContext(ctx).WithPrefix("student_repo")
	log.Debug("getting student: id=%s", id)

	st, err := scanStudent(r.db.QueryRowContext(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("student not found: id=%s", id)
		} else {
			log.Error("failed to get student: %v", err)
		}
		return nil, err
	}
	return st, nil
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	log := logger.FromContext(ctx).WithPrefix("student_repo")
	log.Debug("listing students")

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+studentColumns+` FROM students ORDER BY created_at DESC`)
	if err != nil {
		log.Error("failed to list students: %v", err)
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			log.Error("failed to scan student row: %v", err)
			return nil, err
		}
		students = append(students, *st)
	}
	log.Debug("found %d students", len(students))
	return students, rows.Err()
}

func (r *studentRepository) Insert(ctx context.Context, st models.Student) error {
	log := logger.FromContext(ctx).WithPrefix("student_repo")
	log.Debug("inserting student: id=%s, name=%s", st.ID, st.Name)

	interests, diagnostic, assessment, badges, err := encodeStudent(st)
	if err != nil {
		log.Error("failed to encode student: %v", err)
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO students (
    id, name, age, grade, language, interests, diagnostic, assessment,
    total_points, xp, level, current_streak, longest_streak, last_session_date, badges, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, st.ID, st.Name, st.Age, st.Grade, st.Language, interests, diagnostic, assessment,
		st.TotalPoints, st.XP, st.Level, st.CurrentStreak, st.LongestStreak,
		st.LastSessionDate, badges, st.CreatedAt)
	if err != nil {
		log.Error("failed to insert student: %v", err)
	}
	return err
}

func (r *studentRepository) Update(ctx context.Context, st models.Student) error {
	log := logger.FromContext(ctx).WithPrefix("student_repo")
	log.Debug("updating student: id=%s", st.ID)

	interests, diagnostic, assessment, badges, err := encodeStudent(st)
	if err != nil {
		log.Error("failed to encode student: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE students
SET name = ?, age = ?, grade = ?, language = ?, interests = ?, diagnostic = ?, assessment = ?,
    total_points = ?, xp = ?, level = ?, current_streak = ?, longest_streak = ?,
    last_session_date = ?, badges = ?
WHERE id = ?
`, st.Name, st.Age, st.Grade, st.Language, interests, diagnostic, assessment,
		st.TotalPoints, st.XP, st.Level, st.CurrentStreak, st.LongestStreak,
		st.LastSessionDate, badges, st.ID)
	if err != nil {
		log.Error("failed to update student: %v", err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *studentRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithPrefix("student_repo")
	log.Debug("deleting student: id=%s", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete student: %v", err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func encodeStudent(st models.Student) (interests, diagnostic string, assessment any, badges string, err error) {
	if st.Interests == nil {
		st.Interests = []string{}
	}
	if st.Badges == nil {
		st.Badges = []string{}
	}
	if interests, err = marshalJSON(st.Interests); err != nil {
		return
	}
	if diagnostic, err = marshalJSON(st.Diagnostic); err != nil {
		return
	}
	if badges, err = marshalJSON(st.Badges); err != nil {
		return
	}
	if st.Assessment != nil {
		var s string
		if s, err = marshalJSON(st.Assessment); err != nil {
			return
		}
		assessment = s
	}
	return
}
