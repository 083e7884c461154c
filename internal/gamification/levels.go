package gamification

import (
	"math"

	"github.com/eyeradar/lexiquest/internal/models"
)

const maxLevel = 50

type levelTitle struct {
	threshold int
	title     string
}

var levelTitles = []levelTitle{
	{1, "Beginner"}, {5, "Apprentice"}, {10, "Reader"}, {15, "Scholar"},
	{20, "Expert"}, {25, "Master"}, {30, "Champion"}, {35, "Legend"},
	{40, "Grandmaster"}, {45, "Mythic"}, {50, "Transcendent"},
}

// XPForLevel is the cumulative XP needed to reach a level.
func XPForLevel(level int) int {
	return int(100 * math.Pow(float64(level), 1.5))
}

// LevelTitle returns the highest title at or below the level.
func LevelTitle(level int) string {
	title := levelTitles[0].title
	for _, lt := range levelTitles {
		if level >= lt.threshold {
			title = lt.title
		}
	}
	return title
}

// LevelFromXP maps total XP to the level reached, capped at 50.
func LevelFromXP(xp int) int {
	level := 1
	for level < maxLevel && xp >= XPForLevel(level+1) {
		level++
	}
	return level
}

// LevelInfo expands total XP into the level card shown to students:
// level, title, and progress toward the next threshold.
func LevelInfo(xp int) models.LevelInfo {
	if xp < 0 {
		xp = 0
	}
	level := LevelFromXP(xp)

	current := XPForLevel(level)
	next := XPForLevel(level + 1)
	progress := 100.0
	if next > current {
		progress = float64(xp-current) / float64(next-current) * 100
	}
	progress = math.Round(math.Max(0, math.Min(100, progress))*10) / 10

	return models.LevelInfo{
		Level:           level,
		Title:           LevelTitle(level),
		XP:              xp,
		XPForNextLevel:  next,
		ProgressPercent: progress,
	}
}
