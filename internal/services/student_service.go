package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/eyeradar/lexiquest/internal/errors"
	"github.com/eyeradar/lexiquest/internal/logger"
	"github.com/eyeradar/lexiquest/internal/models"
	"github.com/eyeradar/lexiquest/internal/repository"
)

// StudentPatch carries the fields a PATCH request may change. Nil
// pointers leave the stored value untouched.
type StudentPatch struct {
	Name       *string            `json:"name"`
	Age        *int               `json:"age"`
	Grade      *int               `json:"grade"`
	Language   *string            `json:"language"`
	Interests  *[]string          `json:"interests"`
	Diagnostic *models.Diagnostic `json:"diagnostic"`
}

// StudentService handles student profile business logic
type StudentService interface {
	CreateStudent(ctx context.Context, student models.Student) (*models.Student, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
	UpdateStudent(ctx context.Context, id string, student models.Student) (*models.Student, error)
	PatchStudent(ctx context.Context, id string, patch StudentPatch) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	ImportAssessment(ctx context.Context, id string, assessment models.Assessment) (*models.Student, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) CreateStudent(ctx context.Context, student models.Student) (*models.Student, error) {
	log := logger.FromContext(ctx)

	if student.Name == "" {
		return nil, errors.NewValidationError("name", "must not be empty")
	}
	if student.Age < 4 || student.Age > 18 {
		return nil, errors.NewValidationError("age", "must be between 4 and 18")
	}

	student.ID = uuid.NewString()
	if student.Language == "" {
		student.Language = "en"
	}
	student.TotalPoints = 0
	student.XP = 0
	student.Level = 1
	student.CurrentStreak = 0
	student.LongestStreak = 0
	student.LastSessionDate = ""
	student.Badges = nil
	student.CreatedAt = time.Now().UTC()

	if err := s.studentRepo.Insert(ctx, student); err != nil {
		log.Error("failed to insert student: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("created student %s (%s)", student.ID, student.Name)
	return &student, nil
}

func (s *studentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	log := logger.FromContext(ctx)

	student, err := s.studentRepo.Get(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("student", id)
		}
		log.Error("failed to get student: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return student, nil
}

func (s *studentService) ListStudents(ctx context.Context) ([]models.Student, error) {
	log := logger.FromContext(ctx)

	students, err := s.studentRepo.List(ctx)
	if err != nil {
		log.Error("failed to list students: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return students, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, id string, student models.Student) (*models.Student, error) {
	log := logger.FromContext(ctx)

	existing, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	if student.Name == "" {
		return nil, errors.NewValidationError("name", "must not be empty")
	}

	// Gamification counters are owned by the reward pipeline and never
	// replaced through a profile update.
	student.ID = existing.ID
	student.TotalPoints = existing.TotalPoints
	student.XP = existing.XP
	student.Level = existing.Level
	student.CurrentStreak = existing.CurrentStreak
	student.LongestStreak = existing.LongestStreak
	student.LastSessionDate = existing.LastSessionDate
	student.Badges = existing.Badges
	student.CreatedAt = existing.CreatedAt
	if student.Assessment == nil {
		student.Assessment = existing.Assessment
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		log.Error("failed to update student: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return &student, nil
}

func (s *studentService) PatchStudent(ctx context.Context, id string, patch StudentPatch) (*models.Student, error) {
	log := logger.FromContext(ctx)

	student, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, errors.NewValidationError("name", "must not be empty")
		}
		student.Name = *patch.Name
	}
	if patch.Age != nil {
		if *patch.Age < 4 || *patch.Age > 18 {
			return nil, errors.NewValidationError("age", "must be between 4 and 18")
		}
		student.Age = *patch.Age
	}
	if patch.Grade != nil {
		student.Grade = *patch.Grade
	}
	if patch.Language != nil {
		student.Language = *patch.Language
	}
	if patch.Interests != nil {
		student.Interests = *patch.Interests
	}
	if patch.Diagnostic != nil {
		student.Diagnostic = *patch.Diagnostic
	}

	if err := s.studentRepo.Update(ctx, *student); err != nil {
		log.Error("failed to patch student: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return student, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("student", id)
		}
		log.Error("failed to delete student: %v", err)
		return errors.NewInternalError(err)
	}

	log.Info("deleted student %s", id)
	return nil
}

func (s *studentService) ImportAssessment(ctx context.Context, id string, assessment models.Assessment) (*models.Student, error) {
	log := logger.FromContext(ctx)

	student, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	if assessment.OverallSeverity < 1 || assessment.OverallSeverity > 5 {
		return nil, errors.NewValidationError("overall_severity", "must be between 1 and 5")
	}
	if assessment.AssessmentDate.IsZero() {
		assessment.AssessmentDate = time.Now().UTC()
	}

	student.Assessment = &assessment
	if err := s.studentRepo.Update(ctx, *student); err != nil {
		log.Error("failed to store assessment: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("imported assessment for student %s (severity %d/5)", id, assessment.OverallSeverity)
	return student, nil
}
