package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/eyeradar/lexiquest/internal/catalog"
	"github.com/eyeradar/lexiquest/internal/logger"
	"github.com/eyeradar/lexiquest/internal/models"
)

// Client talks to an OpenAI-compatible chat completions endpoint to
// generate clinically-reasoned adventure suggestions. With no API key
// configured every call returns ErrDisabled and the caller falls back
// to the rule-based builder.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *logger.Logger
}

func New(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 90 * time.Second},
		log:        logger.Default().WithPrefix("aiclient"),
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = fmt.Errorf("ai client disabled: no api key configured")

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens"`
	ResponseFormat map[string]string `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type suggestionPayload struct {
	Worlds    []models.AdventureWorld `json:"worlds"`
	Reasoning []string                `json:"reasoning"`
	Theme     models.ThemeConfig      `json:"theme_config"`
}

// SuggestAdventure asks the model for a personalized set of worlds for
// the student. dyslexiaType, severity, and age are already resolved by
// the caller (overrides applied over the diagnostic profile).
func (c *Client) SuggestAdventure(ctx context.Context, student models.Student, dyslexiaType, severity string, age int) (*models.AdventureSuggestion, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	log := logger.FromContext(ctx).WithPrefix("aiclient").WithField("student_id", student.ID)

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(student, dyslexiaType, severity, age)},
		},
		Temperature:    0.35,
		MaxTokens:      3500,
		ResponseFormat: map[string]string{"type": "json_object"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/chat/completions"
	log.Debug("requesting adventure suggestion from %s (model=%s)", url, c.model)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		log.Error("failed to create request: %v", err)
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("adventure suggestion request failed: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	log.Debug("suggestion response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Warn("suggestion request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("chat completions status %d: %s", resp.StatusCode, string(body))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Warn("failed to decode chat response: %v", err)
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("chat completions returned no choices")
	}

	var parsed suggestionPayload
	raw := strings.TrimSpace(out.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Warn("model returned invalid JSON: %v", err)
		return nil, fmt.Errorf("invalid suggestion JSON: %w", err)
	}
	if len(parsed.Worlds) == 0 {
		return nil, fmt.Errorf("model returned no worlds")
	}

	theme := parsed.Theme
	if theme.PrimaryInterest == "" && len(student.Interests) > 0 {
		theme.PrimaryInterest = strings.ToLower(student.Interests[0])
	}
	if theme.ColorPalette == "" {
		theme.ColorPalette = "default"
	}
	if theme.DecorationStyle == "" {
		theme.DecorationStyle = "nature"
	}

	reasoning := parsed.Reasoning
	if len(reasoning) == 0 {
		reasoning = []string{fmt.Sprintf("AI-generated adventure map for %s", student.Name)}
	}

	log.Info("model generated %d worlds for student %s", len(parsed.Worlds), student.ID)
	return &models.AdventureSuggestion{
		SuggestedWorlds: parsed.Worlds,
		Reasoning:       reasoning,
		Theme:           theme,
	}, nil
}

func buildUserPrompt(student models.Student, dyslexiaType, severity string, age int) string {
	diag := student.Diagnostic

	interests := "None specified"
	if len(student.Interests) > 0 {
		interests = strings.Join(student.Interests, ", ")
	}

	var sevLines []string
	for _, area := range models.DeficitAreas {
		sevLines = append(sevLines, fmt.Sprintf("  %s: %d/5", area, diag.AreaSeverity(area)))
	}

	assessmentSection := "(No eye-tracking assessment data available, use diagnostic profile only)"
	if a := student.Assessment; a != nil {
		deficits, _ := json.MarshalIndent(a.Deficits, "", "    ")
		assessmentSection = fmt.Sprintf(
			"Eye-Tracking Assessment:\n"+
				"  Overall Severity: %d/5\n"+
				"  Words Per Minute: %.0f\n"+
				"  Fixation Duration: %.0f ms (norm ~200ms)\n"+
				"  Fixations Per Line: %.1f\n"+
				"  Regression Rate: %.1f%% (norm <10%%)\n"+
				"  Per-Area Deficit Scores from Eye-Tracking:\n%s",
			a.OverallSeverity,
			a.ReadingMetrics.WordsPerMinute,
			a.ReadingMetrics.FixationDurationMs,
			a.ReadingMetrics.FixationCountPerLine,
			a.ReadingMetrics.RegressionRate,
			string(deficits),
		)
	}

	return fmt.Sprintf(`Design a personalized adventure map for this student. Analyze every data point.

STUDENT PROFILE
Name: %s | Age: %d | Grade: %d | Language: %s
Interests: %s
Dyslexia Type: %s | Overall Severity: %s
Co-occurring: ADHD=%t, Dyscalculia=%t, Dysgraphia=%t
Specialist Notes: %s

PER-AREA SEVERITY (1=mild, 5=severe):
%s

%s

AVAILABLE GAMES FOR AGE %d:
%s

WORLD METADATA (use these exact values):
phonological_awareness -> world_name: "Sound Kingdom",    color: "#6366f1"
rapid_naming           -> world_name: "Speed Valley",     color: "#f59e0b"
working_memory         -> world_name: "Memory Mountains", color: "#8b5cf6"
visual_processing      -> world_name: "Vision Forest",    color: "#10b981"
reading_fluency        -> world_name: "Fluency River",    color: "#3b82f6"
comprehension          -> world_name: "Story Castle",     color: "#ef4444"

THEME OPTIONS:
color_palette: "warm"|"cosmic"|"nature"|"vibrant"|"energetic"|"rainbow"|"forest"|"aquatic"|"tech"|"magical"|"default"
decoration_style: "prehistoric"|"space"|"wildlife"|"musical"|"athletic"|"creative"|"nature"|"underwater"|"futuristic"|"fantasy"|"culinary"|"racing"|"heroic"|"default"

Respond ONLY with valid JSON:
{
  "worlds": [
    {
      "deficit_area": "phonological_awareness",
      "world_number": 1,
      "world_name": "Sound Kingdom",
      "color": "#6366f1",
      "game_ids": ["sound_safari", "rhyme_time_race", "phoneme_blender"]
    }
  ],
  "reasoning": [
    "Profile analysis: [specific observations about this student's data]",
    "Priority selection: [why these areas in this order]",
    "World 1 (Sound Kingdom): [clinical justification referencing actual scores]",
    "World 1 games: [why these specific games suit this student]"
  ],
  "theme_config": {
    "primary_interest": "ocean",
    "color_palette": "aquatic",
    "decoration_style": "underwater"
  }
}`,
		student.Name, age, student.Grade, student.Language,
		interests,
		dyslexiaType, severity,
		diag.HasADHD, diag.HasDyscalculia, diag.HasDysgraphia,
		notesOr(diag.Notes),
		strings.Join(sevLines, "\n"),
		assessmentSection,
		age,
		catalogText(age),
	)
}

func notesOr(notes string) string {
	if notes == "" {
		return "None"
	}
	return notes
}

// catalogText renders the age-filtered game catalog grouped by deficit
// area so the model can only pick from real game ids.
func catalogText(age int) string {
	byArea := map[string][]models.GameDefinition{}
	for _, g := range catalog.All() {
		if g.AgeRangeMin <= age && age <= g.AgeRangeMax {
			byArea[string(g.DeficitArea)] = append(byArea[string(g.DeficitArea)], g)
		}
	}

	areas := make([]string, 0, len(byArea))
	for area := range byArea {
		areas = append(areas, area)
	}
	sort.Strings(areas)

	var b strings.Builder
	for _, area := range areas {
		games := byArea[area]
		label := strings.ToUpper(strings.ReplaceAll(area, "_", " "))
		fmt.Fprintf(&b, "\n%s (%d games available for age %d):\n", label, len(games), age)
		for _, g := range games {
			fmt.Fprintf(&b, "  [%s] %s: %s | Mechanic: %s\n", g.ID, g.Name, g.Description, g.Mechanics)
		}
	}
	return b.String()
}
