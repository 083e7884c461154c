package services

import (
	"context"
	"database/sql"

	"github.com/eyeradar/lexiquest/internal/adventure"
	"github.com/eyeradar/lexiquest/internal/builder"
	"github.com/eyeradar/lexiquest/internal/difficulty"
	"github.com/eyeradar/lexiquest/internal/errors"
	"github.com/eyeradar/lexiquest/internal/logger"
	"github.com/eyeradar/lexiquest/internal/models"
	"github.com/eyeradar/lexiquest/internal/repository"
)

// MapConfig holds the canvas dimensions and checkpoint cadence for map
// rendering payloads.
type MapConfig struct {
	CheckpointInterval int
	MapWidth           float64
	MapHeight          float64
	OverworldWidth     float64
	OverworldHeight    float64
}

func DefaultMapConfig() MapConfig {
	return MapConfig{
		CheckpointInterval: 2,
		MapWidth:           1200,
		MapHeight:          750,
		OverworldWidth:     1000,
		OverworldHeight:    500,
	}
}

// WorldMapPayload is the full response for one world: the rendered map
// plus the declarative level-start payloads the battle overlay consumes.
type WorldMapPayload struct {
	Map         models.WorldMap     `json:"map"`
	LevelStarts []models.LevelStart `json:"level_starts"`
}

// MapService computes the adventure map read models for a student
type MapService interface {
	WorldSummaries(ctx context.Context, studentID string) ([]models.WorldSummary, error)
	WorldMap(ctx context.Context, studentID string, area models.DeficitArea) (*WorldMapPayload, error)
	Overworld(ctx context.Context, studentID string) (*models.Overworld, error)
}

type mapService struct {
	studentRepo   repository.StudentRepository
	sessionRepo   repository.SessionRepository
	adventureRepo repository.AdventureRepository
	cfg           MapConfig
}

// NewMapService creates a new MapService
func NewMapService(studentRepo repository.StudentRepository, sessionRepo repository.SessionRepository, adventureRepo repository.AdventureRepository, cfg MapConfig) MapService {
	return &mapService{
		studentRepo:   studentRepo,
		sessionRepo:   sessionRepo,
		adventureRepo: adventureRepo,
		cfg:           cfg,
	}
}

// resolveWorlds returns the student's curriculum: the active
// teacher-authored adventure when one exists, the age-filtered default
// otherwise. The theme follows the same choice.
func (s *mapService) resolveWorlds(ctx context.Context, student *models.Student) ([]adventure.World, models.ThemeConfig, error) {
	adv, err := s.adventureRepo.GetActive(ctx, student.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return adventure.DefaultWorlds(student.Age), builder.ThemeFromInterests(student.Interests), nil
		}
		return nil, models.ThemeConfig{}, err
	}
	return adventure.CustomWorlds(adv.Worlds), adv.Theme, nil
}

func (s *mapService) loadStudentAndSessions(ctx context.Context, studentID string) (*models.Student, []models.Session, error) {
	student, err := s.studentRepo.Get(ctx, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, errors.NewNotFoundError("student", studentID)
		}
		return nil, nil, errors.NewInternalError(err)
	}

	sessions, err := s.sessionRepo.List(ctx, models.SessionFilter{StudentID: studentID, Limit: -1})
	if err != nil {
		return nil, nil, errors.NewInternalError(err)
	}
	return student, sessions, nil
}

func (s *mapService) WorldSummaries(ctx context.Context, studentID string) ([]models.WorldSummary, error) {
	log := logger.FromContext(ctx)

	student, sessions, err := s.loadStudentAndSessions(ctx, studentID)
	if err != nil {
		return nil, err
	}

	worlds, _, err := s.resolveWorlds(ctx, student)
	if err != nil {
		log.Error("failed to resolve worlds: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return adventure.Summaries(worlds, sessions), nil
}

func (s *mapService) WorldMap(ctx context.Context, studentID string, area models.DeficitArea) (*WorldMapPayload, error) {
	log := logger.FromContext(ctx)

	student, sessions, err := s.loadStudentAndSessions(ctx, studentID)
	if err != nil {
		return nil, err
	}

	worlds, theme, err := s.resolveWorlds(ctx, student)
	if err != nil {
		log.Error("failed to resolve worlds: %v", err)
		return nil, errors.NewInternalError(err)
	}

	worldIndex := -1
	var world adventure.World
	for i, w := range worlds {
		if w.Area == area {
			worldIndex = i
			world = w
			break
		}
	}
	if worldIndex < 0 {
		return nil, errors.NewNotFoundError("world", string(area))
	}

	cfg := adventure.Config{
		Width:              s.cfg.MapWidth,
		Height:             s.cfg.MapHeight,
		CheckpointInterval: s.cfg.CheckpointInterval,
	}
	worldMap := adventure.BuildWorldMap(world, worldIndex, sessions, theme, cfg)
	level := recommendedLevel(student, area, sessions)

	return &WorldMapPayload{
		Map:         worldMap,
		LevelStarts: levelStarts(worldMap, level),
	}, nil
}

func (s *mapService) Overworld(ctx context.Context, studentID string) (*models.Overworld, error) {
	log := logger.FromContext(ctx)

	student, sessions, err := s.loadStudentAndSessions(ctx, studentID)
	if err != nil {
		return nil, err
	}

	worlds, _, err := s.resolveWorlds(ctx, student)
	if err != nil {
		log.Error("failed to resolve worlds: %v", err)
		return nil, errors.NewInternalError(err)
	}

	overworld := adventure.BuildOverworld(worlds, sessions, s.cfg.OverworldWidth, s.cfg.OverworldHeight)
	return &overworld, nil
}

// bossKinds are the battle-overlay boss characters, cycled per castle.
var bossKinds = []string{
	"dark-sorcerer",
	"giant-golem",
	"shadow-beast",
	"corrupted-knight",
	"dragon",
}

// recommendedLevel derives the adaptive difficulty for a world from
// the student's profile and their recent completed sessions in that
// area.
func recommendedLevel(student *models.Student, area models.DeficitArea, sessions []models.Session) int {
	severity := areaSeverity(student, area)
	recent := recentAccuracies(sessions, area, difficulty.RecentWindow)
	current := difficulty.InitialLevel(student.Age, severity)
	return difficulty.NextLevel(student.Age, severity, current, recent)
}

// areaSeverity reads the assessed severity for an area, defaulting to
// the neutral 3 when the student has no assessment for it.
func areaSeverity(student *models.Student, area models.DeficitArea) int {
	if student.Assessment != nil {
		if info, ok := student.Assessment.Deficits[string(area)]; ok && info.Severity >= 1 && info.Severity <= 5 {
			return info.Severity
		}
	}
	return 3
}

// recentAccuracies collects up to window completed-session accuracies
// for an area. The session list arrives newest first; the difficulty
// window reads oldest to newest.
func recentAccuracies(sessions []models.Session, area models.DeficitArea, window int) []float64 {
	var recent []float64
	for _, sess := range sessions {
		if sess.DeficitArea != area || sess.Status != models.SessionCompleted {
			continue
		}
		recent = append(recent, sess.Accuracy)
		if len(recent) == window {
			break
		}
	}
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	return recent
}

// levelStarts derives one declarative battle payload per node. Castle
// nodes become boss fights; the final castle is always the dragon.
func levelStarts(m models.WorldMap, level int) []models.LevelStart {
	starts := make([]models.LevelStart, 0, len(m.Nodes))
	castleIndex := 0
	castleTotal := 0
	for _, n := range m.Nodes {
		if n.Type == models.NodeCastle {
			castleTotal++
		}
	}

	for _, n := range m.Nodes {
		ls := models.LevelStart{
			LevelNumber: n.LevelNumber,
			WorldArea:   m.Area,
			WorldName:   m.WorldName,
			Theme:       m.Theme,
			Difficulty:  level,
			Params:      difficulty.ParamsForLevel(level),
		}
		if n.Type == models.NodeCastle {
			ls.IsBoss = true
			if castleIndex == castleTotal-1 {
				ls.BossKind = "dragon"
			} else {
				ls.BossKind = bossKinds[castleIndex%len(bossKinds)]
			}
			castleIndex++
		} else if n.Game != nil {
			ls.GameID = n.Game.ID
			// A game with fewer levels than the recommendation caps it.
			if n.Game.DifficultyLevels > 0 && ls.Difficulty > n.Game.DifficultyLevels {
				ls.Difficulty = n.Game.DifficultyLevels
				ls.Params = difficulty.ParamsForLevel(ls.Difficulty)
			}
		}
		starts = append(starts, ls)
	}
	return starts
}
