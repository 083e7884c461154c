package difficulty

import "github.com/eyeradar/lexiquest/internal/models"

// ParamsForLevel sizes one exercise session: harder levels mean more
// items, tighter time, fewer hints, and more distractors.
func ParamsForLevel(level int) models.SessionParams {
	return models.SessionParams{
		ItemCount:        clamp(8+level*2, 10, 30),
		TimeLimitSeconds: maxInt(5, 30-level*2),
		HintsAvailable:   maxInt(0, 5-level/2),
		DistractorCount:  minInt(3, 1+level/3),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
