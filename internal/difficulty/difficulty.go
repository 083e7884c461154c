// Package difficulty adapts per-area exercise difficulty to the
// student. Age and deficit severity set the starting level; recent
// accuracy moves it, with warm-up protection so the level never rises
// before enough sessions have been played. All functions are pure and
// accuracy values are percentages.
package difficulty

const (
	// MinLevel and MaxLevel bound every computed level.
	MinLevel = 1
	MaxLevel = 10

	// RecentWindow is how many completed sessions feed the calculation.
	RecentWindow = 5

	increaseThreshold         = 85.0
	maintainMin               = 60.0
	minSessionsBeforeIncrease = 3
)

// Trend labels for recent performance.
const (
	TrendImproving        = "improving"
	TrendStable           = "stable"
	TrendDeclining        = "declining"
	TrendInsufficientData = "insufficient_data"
)

// BaseLevelForAge maps the student's age to a starting level band.
func BaseLevelForAge(age int) int {
	switch {
	case age <= 5:
		return 1
	case age <= 7:
		return 2
	case age <= 9:
		return 3
	case age <= 11:
		return 4
	case age <= 13:
		return 5
	default:
		return 6
	}
}

// SeverityAdjustment shifts the starting level by deficit severity.
// Severity 3 is neutral; milder deficits start higher, severe lower.
func SeverityAdjustment(severity int) float64 {
	switch severity {
	case 1:
		return 1.0
	case 2:
		return 0.5
	case 4:
		return -0.5
	case 5:
		return -1.0
	default:
		return 0
	}
}

// InitialLevel is the starting level for an area with no play history.
func InitialLevel(age, severity int) int {
	return clamp(int(float64(BaseLevelForAge(age))+SeverityAdjustment(severity)), MinLevel, MaxLevel)
}

// WeightedAccuracy averages recent accuracies with later sessions
// weighted heavier. Input is oldest to newest. The second return is
// false when there is no history.
func WeightedAccuracy(recent []float64) (float64, bool) {
	if len(recent) == 0 {
		return 0, false
	}

	var weightedSum, totalWeight float64
	for i, acc := range recent {
		w := float64(i+1) / float64(len(recent))
		weightedSum += acc * w
		totalWeight += w
	}
	return weightedSum / totalWeight, true
}

// Trend classifies recent performance by comparing the first half of
// the window against the second. Fewer than five sessions is not
// enough signal.
func Trend(recent []float64) string {
	if len(recent) < 5 {
		return TrendInsufficientData
	}

	mid := len(recent) / 2
	var first, second float64
	for _, a := range recent[:mid] {
		first += a
	}
	for _, a := range recent[mid:] {
		second += a
	}
	diff := second/float64(len(recent)-mid) - first/float64(mid)

	switch {
	case diff > 10:
		return TrendImproving
	case diff < -10:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// NextLevel computes the difficulty for the next session in an area.
// recent is oldest to newest; with no history the initial level from
// age and severity applies. One step up needs a weighted accuracy
// above 85% after the warm-up; below 60% steps down. Three straight
// sessions under 50% drop two levels, three straight above 90% raise
// two. A declining trend under 70% always forces a decrease, and a
// steady improvement above 75% nudges up even inside the maintain
// band.
func NextLevel(age, severity, currentLevel int, recent []float64) int {
	if len(recent) == 0 {
		return InitialLevel(age, severity)
	}

	weighted, _ := WeightedAccuracy(recent)
	warmedUp := len(recent) >= minSessionsBeforeIncrease

	delta := 0
	if warmedUp && weighted > increaseThreshold {
		delta = 1
	} else if weighted < maintainMin {
		delta = -1
	}

	if len(recent) >= 3 {
		lastThree := recent[len(recent)-3:]
		if allBelow(lastThree, 50) {
			delta = -2
		} else if warmedUp && allAbove(lastThree, 90) {
			delta = 2
		}
	}

	trend := Trend(recent)
	if trend == TrendDeclining && weighted < 70 {
		if delta > -1 {
			delta = -1
		}
	} else if trend == TrendImproving && weighted > 75 && warmedUp && delta == 0 {
		delta = 1
	}

	return clamp(currentLevel+delta, MinLevel, MaxLevel)
}

func allBelow(accs []float64, limit float64) bool {
	for _, a := range accs {
		if a >= limit {
			return false
		}
	}
	return true
}

func allAbove(accs []float64, limit float64) bool {
	for _, a := range accs {
		if a <= limit {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
