package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/eyeradar/lexiquest/internal/aiclient"
	"github.com/eyeradar/lexiquest/internal/builder"
	"github.com/eyeradar/lexiquest/internal/catalog"
	"github.com/eyeradar/lexiquest/internal/errors"
	"github.com/eyeradar/lexiquest/internal/logger"
	"github.com/eyeradar/lexiquest/internal/models"
	"github.com/eyeradar/lexiquest/internal/repository"
)

// AdventureInput is the teacher-authored payload for creating or
// replacing an adventure.
type AdventureInput struct {
	StudentID string                  `json:"student_id"`
	CreatedBy string                  `json:"created_by"`
	Title     string                  `json:"title"`
	Worlds    []models.AdventureWorld `json:"worlds"`
	Theme     models.ThemeConfig      `json:"theme_config"`
}

// SuggestInput selects the student and optional profile overrides for
// an adventure suggestion.
type SuggestInput struct {
	StudentID    string `json:"student_id"`
	DyslexiaType string `json:"dyslexia_type,omitempty"`
	Severity     string `json:"severity,omitempty"`
	Age          int    `json:"age,omitempty"`
}

// AdventureService handles custom adventure business logic
type AdventureService interface {
	CreateAdventure(ctx context.Context, input AdventureInput) (*models.Adventure, error)
	GetAdventure(ctx context.Context, id string) (*models.Adventure, error)
	GetActiveAdventure(ctx context.Context, studentID string) (*models.Adventure, error)
	ListAdventures(ctx context.Context, studentID string) ([]models.Adventure, error)
	UpdateAdventure(ctx context.Context, id string, input AdventureInput) (*models.Adventure, error)
	DeleteAdventure(ctx context.Context, id string) error
	StatusAll(ctx context.Context) (map[string]models.AdventureStatusEntry, error)
	Suggest(ctx context.Context, input SuggestInput) (*models.AdventureSuggestion, error)
	GamesForArea(ctx context.Context, area models.DeficitArea, age int, severity string) ([]models.GameDefinition, error)
}

type adventureService struct {
	adventureRepo repository.AdventureRepository
	studentRepo   repository.StudentRepository
	aiClient      aiclient.ClientInterface
}

// NewAdventureService creates a new AdventureService
func NewAdventureService(adventureRepo repository.AdventureRepository, studentRepo repository.StudentRepository, aiClient aiclient.ClientInterface) AdventureService {
	return &adventureService{
		adventureRepo: adventureRepo,
		studentRepo:   studentRepo,
		aiClient:      aiClient,
	}
}

// validateWorlds resolves authored worlds against the catalog: unknown
// game ids are dropped, worlds left empty are rejected, and numbering
// is rewritten sequentially.
func validateWorlds(worlds []models.AdventureWorld) ([]models.AdventureWorld, error) {
	if len(worlds) == 0 {
		return nil, errors.NewValidationError("worlds", "must not be empty")
	}

	out := make([]models.AdventureWorld, 0, len(worlds))
	for _, w := range worlds {
		if !models.ValidDeficitArea(w.DeficitArea) {
			return nil, errors.NewValidationError("deficit_area", "unknown deficit area: "+w.DeficitArea)
		}
		games := catalog.Resolve(w.GameIDs)
		if len(games) == 0 {
			return nil, errors.NewValidationError("game_ids", "world "+w.WorldName+" has no known games")
		}
		ids := make([]string, len(games))
		for i, g := range games {
			ids[i] = g.ID
		}
		w.GameIDs = ids
		w.WorldNumber = len(out) + 1
		out = append(out, w)
	}
	return out, nil
}

func (s *adventureService) CreateAdventure(ctx context.Context, input AdventureInput) (*models.Adventure, error) {
	log := logger.FromContext(ctx)

	student, err := s.studentRepo.Get(ctx, input.StudentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("student", input.StudentID)
		}
		log.Error("failed to get student: %v", err)
		return nil, errors.NewInternalError(err)
	}

	worlds, err := validateWorlds(input.Worlds)
	if err != nil {
		return nil, err
	}

	theme := input.Theme
	if theme == (models.ThemeConfig{}) {
		theme = builder.ThemeFromInterests(student.Interests)
	}

	title := input.Title
	if title == "" {
		title = student.Name + "'s Adventure"
	}

	// One active adventure per student: any previous active map is
	// archived before the new one lands.
	if err := s.adventureRepo.ArchiveActive(ctx, input.StudentID); err != nil {
		log.Error("failed to archive previous adventures: %v", err)
		return nil, errors.NewInternalError(err)
	}

	now := time.Now().UTC()
	adv := models.Adventure{
		ID:        uuid.NewString(),
		StudentID: input.StudentID,
		CreatedBy: input.CreatedBy,
		Title:     title,
		Worlds:    worlds,
		Theme:     theme,
		Status:    models.AdventureActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.adventureRepo.Insert(ctx, adv); err != nil {
		log.Error("failed to insert adventure: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("created adventure %s for student %s (%d worlds)", adv.ID, adv.StudentID, len(adv.Worlds))
	return &adv, nil
}

func (s *adventureService) GetAdventure(ctx context.Context, id string) (*models.Adventure, error) {
	log := logger.FromContext(ctx)

	adv, err := s.adventureRepo.Get(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("adventure", id)
		}
		log.Error("failed to get adventure: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return adv, nil
}

func (s *adventureService) GetActiveAdventure(ctx context.Context, studentID string) (*models.Adventure, error) {
	log := logger.FromContext(ctx)

	adv, err := s.adventureRepo.GetActive(ctx, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("active adventure for student", studentID)
		}
		log.Error("failed to get active adventure: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return adv, nil
}

func (s *adventureService) ListAdventures(ctx context.Context, studentID string) ([]models.Adventure, error) {
	log := logger.FromContext(ctx)

	adventures, err := s.adventureRepo.ListByStudent(ctx, studentID)
	if err != nil {
		log.Error("failed to list adventures: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return adventures, nil
}

func (s *adventureService) UpdateAdventure(ctx context.Context, id string, input AdventureInput) (*models.Adventure, error) {
	log := logger.FromContext(ctx)

	existing, err := s.GetAdventure(ctx, id)
	if err != nil {
		return nil, err
	}

	worlds, err := validateWorlds(input.Worlds)
	if err != nil {
		return nil, err
	}

	existing.Worlds = worlds
	if input.Title != "" {
		existing.Title = input.Title
	}
	if input.Theme != (models.ThemeConfig{}) {
		existing.Theme = input.Theme
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.adventureRepo.Update(ctx, *existing); err != nil {
		log.Error("failed to update adventure: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return existing, nil
}

func (s *adventureService) DeleteAdventure(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.adventureRepo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("adventure", id)
		}
		log.Error("failed to delete adventure: %v", err)
		return errors.NewInternalError(err)
	}

	log.Info("deleted adventure %s", id)
	return nil
}

// StatusAll reports, per student id, whether an active adventure exists.
// The teacher dashboard roster renders this in one request.
func (s *adventureService) StatusAll(ctx context.Context) (map[string]models.AdventureStatusEntry, error) {
	log := logger.FromContext(ctx)

	students, err := s.studentRepo.List(ctx)
	if err != nil {
		log.Error("failed to list students: %v", err)
		return nil, errors.NewInternalError(err)
	}

	out := make(map[string]models.AdventureStatusEntry, len(students))
	for _, st := range students {
		adv, err := s.adventureRepo.GetActive(ctx, st.ID)
		if err != nil {
			if err == sql.ErrNoRows {
				out[st.ID] = models.AdventureStatusEntry{}
				continue
			}
			log.Error("failed to get active adventure for student %s: %v", st.ID, err)
			return nil, errors.NewInternalError(err)
		}
		out[st.ID] = models.AdventureStatusEntry{
			HasAdventure: true,
			WorldCount:   len(adv.Worlds),
			Title:        adv.Title,
		}
	}
	return out, nil
}

// Suggest generates a personalized adventure proposal. The AI client is
// tried first when configured; any failure falls back to the rule-based
// builder so the endpoint always answers.
func (s *adventureService) Suggest(ctx context.Context, input SuggestInput) (*models.AdventureSuggestion, error) {
	log := logger.FromContext(ctx)

	student, err := s.studentRepo.Get(ctx, input.StudentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("student", input.StudentID)
		}
		log.Error("failed to get student: %v", err)
		return nil, errors.NewInternalError(err)
	}

	opts := builder.Options{
		DyslexiaType: input.DyslexiaType,
		Severity:     input.Severity,
		Age:          input.Age,
	}

	if s.aiClient != nil && s.aiClient.Enabled() {
		dyslexiaType := opts.DyslexiaType
		if dyslexiaType == "" {
			dyslexiaType = student.Diagnostic.DyslexiaType
		}
		severity := opts.Severity
		if severity == "" {
			severity = student.Diagnostic.SeverityLevel
		}
		age := opts.Age
		if age == 0 {
			age = student.Age
		}

		suggestion, err := s.aiClient.SuggestAdventure(ctx, *student, dyslexiaType, severity, age)
		if err == nil && suggestion != nil {
			return suggestion, nil
		}
		log.Warn("AI suggestion unavailable, using template builder: %v", err)
	}

	suggestion := builder.Suggest(*student, opts)
	return &suggestion, nil
}

func (s *adventureService) GamesForArea(ctx context.Context, area models.DeficitArea, age int, severity string) ([]models.GameDefinition, error) {
	if !models.ValidDeficitArea(string(area)) {
		return nil, errors.NewValidationError("area", "unknown deficit area: "+string(area))
	}
	return builder.GamesForArea(area, age, severity), nil
}
