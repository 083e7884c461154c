// Package builder suggests personalized adventure curricula from a
// student's diagnostic profile. It is the deterministic fallback
// behind the AI-assisted suggestion flow and shares its output shape.
package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eyeradar/lexiquest/internal/adventure"
	"github.com/eyeradar/lexiquest/internal/catalog"
	"github.com/eyeradar/lexiquest/internal/models"
)

const (
	DyslexiaPhonological  = "phonological"
	DyslexiaSurface       = "surface"
	DyslexiaRapidNaming   = "rapid_naming"
	DyslexiaVisual        = "visual"
	DyslexiaDoubleDeficit = "double_deficit"
	DyslexiaMixed         = "mixed"
	DyslexiaUnspecified   = "unspecified"

	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

type areaWeight struct {
	area   models.DeficitArea
	weight float64
}

// Intervention priorities per dyslexia subtype. Order within a list is
// the tie-break when scores match.
var typePriorities = map[string][]areaWeight{
	DyslexiaPhonological: {
		{models.PhonologicalAwareness, 1.0},
		{models.ReadingFluency, 0.7},
		{models.Comprehension, 0.5},
		{models.RapidNaming, 0.4},
		{models.WorkingMemory, 0.3},
		{models.VisualProcessing, 0.2},
	},
	DyslexiaSurface: {
		{models.VisualProcessing, 0.9},
		{models.ReadingFluency, 0.8},
		{models.Comprehension, 0.6},
		{models.PhonologicalAwareness, 0.4},
		{models.WorkingMemory, 0.3},
		{models.RapidNaming, 0.3},
	},
	DyslexiaRapidNaming: {
		{models.RapidNaming, 1.0},
		{models.ReadingFluency, 0.8},
		{models.VisualProcessing, 0.5},
		{models.PhonologicalAwareness, 0.4},
		{models.WorkingMemory, 0.4},
		{models.Comprehension, 0.3},
	},
	DyslexiaVisual: {
		{models.VisualProcessing, 1.0},
		{models.ReadingFluency, 0.6},
		{models.RapidNaming, 0.5},
		{models.Comprehension, 0.4},
		{models.PhonologicalAwareness, 0.3},
		{models.WorkingMemory, 0.3},
	},
	DyslexiaDoubleDeficit: {
		{models.PhonologicalAwareness, 1.0},
		{models.RapidNaming, 1.0},
		{models.ReadingFluency, 0.8},
		{models.WorkingMemory, 0.6},
		{models.VisualProcessing, 0.5},
		{models.Comprehension, 0.5},
	},
	DyslexiaMixed: {
		{models.PhonologicalAwareness, 0.7},
		{models.RapidNaming, 0.7},
		{models.ReadingFluency, 0.7},
		{models.WorkingMemory, 0.7},
		{models.VisualProcessing, 0.7},
		{models.Comprehension, 0.7},
	},
	DyslexiaUnspecified: {
		{models.PhonologicalAwareness, 0.5},
		{models.RapidNaming, 0.5},
		{models.ReadingFluency, 0.5},
		{models.WorkingMemory, 0.5},
		{models.VisualProcessing, 0.5},
		{models.Comprehension, 0.5},
	},
}

// Game suitability per dyslexia subtype; unlisted games score 0.5.
var typeGamePreferences = map[string]map[string]float64{
	DyslexiaPhonological: {
		"sound_safari": 1.0, "phoneme_blender": 1.0, "rhyme_time_race": 0.95,
		"syllable_stomper": 0.9, "sound_swap": 0.9,
		"repeated_reader": 0.7, "phrase_flash": 0.6,
		"letter_detective": 0.4, "memory_matrix": 0.3,
	},
	DyslexiaSurface: {
		"letter_detective": 1.0, "pattern_matcher": 0.95, "mirror_image": 0.95,
		"visual_closure": 0.9, "tracking_trail": 0.85,
		"sight_word_sprint": 0.9, "flash_card_frenzy": 0.85,
		"phrase_flash": 0.7, "word_ladder": 0.6,
	},
	DyslexiaRapidNaming: {
		"speed_namer": 1.0, "flash_card_frenzy": 0.95, "object_blitz": 0.95,
		"letter_stream": 0.9, "sight_word_sprint": 0.85,
		"phrase_flash": 0.8, "repeated_reader": 0.7,
	},
	DyslexiaVisual: {
		"tracking_trail": 1.0, "letter_detective": 0.95,
		"pattern_matcher": 0.95, "visual_closure": 0.9, "mirror_image": 0.85,
	},
	DyslexiaDoubleDeficit: {
		"sound_safari": 0.95, "phoneme_blender": 0.95, "rhyme_time_race": 0.9,
		"speed_namer": 0.95, "flash_card_frenzy": 0.9, "object_blitz": 0.85,
		"sight_word_sprint": 0.9, "repeated_reader": 0.85,
	},
	DyslexiaMixed: {
		"sound_safari": 0.8, "letter_detective": 0.8, "speed_namer": 0.8,
		"memory_matrix": 0.8, "phrase_flash": 0.8, "question_quest": 0.8,
	},
}

// Games too demanding for a given overall severity.
var severityExclusions = map[string][]string{
	SeverityMild:     {},
	SeverityModerate: {"dual_task_challenge"},
	SeveritySevere:   {"dual_task_challenge", "backward_spell", "inference_detective"},
}

type interestTheme struct {
	keyword string
	theme   models.ThemeConfig
}

// Checked in order, first substring match wins.
var interestThemes = []interestTheme{
	{"dinosaurs", models.ThemeConfig{ColorPalette: "warm", DecorationStyle: "prehistoric"}},
	{"space", models.ThemeConfig{ColorPalette: "cosmic", DecorationStyle: "space"}},
	{"animals", models.ThemeConfig{ColorPalette: "nature", DecorationStyle: "wildlife"}},
	{"music", models.ThemeConfig{ColorPalette: "vibrant", DecorationStyle: "musical"}},
	{"sports", models.ThemeConfig{ColorPalette: "energetic", DecorationStyle: "athletic"}},
	{"art", models.ThemeConfig{ColorPalette: "rainbow", DecorationStyle: "creative"}},
	{"nature", models.ThemeConfig{ColorPalette: "forest", DecorationStyle: "nature"}},
	{"ocean", models.ThemeConfig{ColorPalette: "aquatic", DecorationStyle: "underwater"}},
	{"robots", models.ThemeConfig{ColorPalette: "tech", DecorationStyle: "futuristic"}},
	{"fairy tales", models.ThemeConfig{ColorPalette: "magical", DecorationStyle: "fantasy"}},
	{"cooking", models.ThemeConfig{ColorPalette: "warm", DecorationStyle: "culinary"}},
	{"cars", models.ThemeConfig{ColorPalette: "energetic", DecorationStyle: "racing"}},
	{"superheroes", models.ThemeConfig{ColorPalette: "vibrant", DecorationStyle: "heroic"}},
}

// Areas only earn a world when the per-area severity reaches this, on
// the 1-5 scale.
const severityWorldThreshold = 2

const maxWorlds = 6

// Options override parts of the student profile for what-if previews
// in the adventure editor.
type Options struct {
	DyslexiaType string
	Severity     string
	Age          int
}

// Suggest builds a rule-based adventure for one student: rank deficit
// areas by subtype priority boosted by per-area severity, select the
// worthwhile ones, then fill each world with the best-suited
// age-appropriate games.
func Suggest(student models.Student, opts Options) models.AdventureSuggestion {
	diag := student.Diagnostic

	dysType := firstNonEmpty(opts.DyslexiaType, diag.DyslexiaType, DyslexiaUnspecified)
	severity := firstNonEmpty(opts.Severity, diag.SeverityLevel, SeverityModerate)
	age := student.Age
	if opts.Age > 0 {
		age = opts.Age
	}

	priorities, ok := typePriorities[dysType]
	if !ok {
		dysType = DyslexiaUnspecified
		priorities = typePriorities[DyslexiaUnspecified]
	}
	if _, ok := severityExclusions[severity]; !ok {
		severity = SeverityModerate
	}

	var reasoning []string

	type scoredArea struct {
		area     models.DeficitArea
		score    float64
		severity int
	}
	scored := make([]scoredArea, 0, len(priorities))
	for _, p := range priorities {
		sev := diag.AreaSeverity(p.area)
		scored = append(scored, scoredArea{
			area:     p.area,
			score:    p.weight + float64(sev)/5.0*0.4,
			severity: sev,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	var selected []models.DeficitArea
	for _, sa := range scored {
		if sa.score >= 0.5 || len(selected) < 2 {
			if sa.severity >= severityWorldThreshold || len(selected) < 2 {
				selected = append(selected, sa.area)
			}
		}
	}
	if len(selected) > maxWorlds {
		selected = selected[:maxWorlds]
	}

	reasoning = append(reasoning, fmt.Sprintf(
		"Selected %d worlds based on %s dyslexia profile (%s severity)",
		len(selected), dysType, severity))

	excluded := make(map[string]bool)
	for _, id := range severityExclusions[severity] {
		excluded[id] = true
	}
	prefs := typeGamePreferences[dysType]

	gamesPerWorld := 5
	switch severity {
	case SeveritySevere:
		gamesPerWorld = 3
	case SeverityModerate:
		gamesPerWorld = 4
	}

	var worlds []models.AdventureWorld
	for _, area := range selected {
		picked := rankGames(area, age, excluded, prefs)
		if len(picked) == 0 {
			reasoning = append(reasoning, fmt.Sprintf(
				"Skipped %s: no age-appropriate games for age %d",
				adventure.WorldNames[area], age))
			continue
		}
		if len(picked) > gamesPerWorld {
			picked = picked[:gamesPerWorld]
		}

		number := len(worlds) + 1
		ids := make([]string, len(picked))
		names := make([]string, len(picked))
		for i, g := range picked {
			ids[i] = g.ID
			names[i] = g.Name
		}
		worlds = append(worlds, models.AdventureWorld{
			DeficitArea: string(area),
			WorldNumber: number,
			WorldName:   adventure.WorldNames[area],
			Color:       adventure.WorldColors[area],
			GameIDs:     ids,
		})
		reasoning = append(reasoning, fmt.Sprintf(
			"World %d (%s): %d exercises selected [%s]",
			number, adventure.WorldNames[area], len(picked), strings.Join(names, ", ")))
	}

	theme := ThemeFromInterests(student.Interests)
	if len(student.Interests) > 0 {
		top := student.Interests
		if len(top) > 3 {
			top = top[:3]
		}
		reasoning = append(reasoning, "Theme personalized for interests: "+strings.Join(top, ", "))
	}

	return models.AdventureSuggestion{
		SuggestedWorlds: worlds,
		Reasoning:       reasoning,
		Theme:           theme,
	}
}

func rankGames(area models.DeficitArea, age int, excluded map[string]bool, prefs map[string]float64) []models.GameDefinition {
	var candidates []models.GameDefinition
	for _, g := range catalog.ByAreaForAge(area, age) {
		if excluded[g.ID] || g.GameType == models.GameCastleBoss {
			continue
		}
		candidates = append(candidates, g)
	}
	score := func(id string) float64 {
		if v, ok := prefs[id]; ok {
			return v
		}
		return 0.5
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return score(candidates[i].ID) > score(candidates[j].ID)
	})
	return candidates
}

// ThemeFromInterests maps the student's interests to map theming,
// checking the primary interest first and falling back to secondary
// ones before the default.
func ThemeFromInterests(interests []string) models.ThemeConfig {
	if len(interests) == 0 {
		return models.DefaultTheme()
	}
	primary := strings.ToLower(interests[0])

	match := func(interest string) (models.ThemeConfig, bool) {
		for _, it := range interestThemes {
			if strings.Contains(interest, it.keyword) {
				return it.theme, true
			}
		}
		return models.ThemeConfig{}, false
	}

	theme, ok := match(primary)
	if !ok {
		for _, interest := range interests[1:] {
			if theme, ok = match(strings.ToLower(interest)); ok {
				break
			}
		}
	}
	if !ok {
		theme = models.DefaultTheme()
	}
	theme.PrimaryInterest = primary
	return theme
}

// GamesForArea lists the games a teacher may assign to a world in the
// adventure editor, filtered by age and severity exclusions.
func GamesForArea(area models.DeficitArea, age int, severity string) []models.GameDefinition {
	if _, ok := severityExclusions[severity]; !ok {
		severity = SeverityModerate
	}
	excluded := make(map[string]bool)
	for _, id := range severityExclusions[severity] {
		excluded[id] = true
	}

	var out []models.GameDefinition
	for _, g := range catalog.ByAreaForAge(area, age) {
		if excluded[g.ID] || g.GameType == models.GameCastleBoss {
			continue
		}
		out = append(out, g)
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
