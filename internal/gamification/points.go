// Package gamification implements the reward mechanics: session
// points, the XP level curve, day streaks, and badge awarding. All
// functions here are pure; persistence and orchestration live in the
// service layer.
package gamification

const (
	pointsPerCorrect        = 10
	pointsParticipation     = 2
	accuracyBonusThreshold  = 80.0
	accuracyBonusMultiplier = 1.5
	perfectScoreBonus       = 50
	sessionCompletionBonus  = 20
)

// SessionPoints scores one completed session. Accuracy is a
// percentage. Base points per correct answer plus a participation
// trickle per item, a 1.5x base multiplier at 80% accuracy and above,
// a flat perfect-score bonus at 100%, and a completion bonus.
func SessionPoints(correctCount, totalItems int, accuracy float64) int {
	if correctCount < 0 {
		correctCount = 0
	}
	if totalItems < 0 {
		totalItems = 0
	}

	base := correctCount * pointsPerCorrect
	participation := totalItems * pointsParticipation

	bonus := 0
	if accuracy >= accuracyBonusThreshold {
		bonus = int(float64(base) * (accuracyBonusMultiplier - 1))
	}

	perfect := 0
	if accuracy >= 100 {
		perfect = perfectScoreBonus
	}

	return base + participation + bonus + perfect + sessionCompletionBonus
}
