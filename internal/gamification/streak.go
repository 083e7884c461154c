package gamification

import "time"

const dateLayout = "2006-01-02"

// StreakUpdate is the outcome of folding one day of activity into a
// student's streak counters.
type StreakUpdate struct {
	CurrentStreak   int
	LongestStreak   int
	LastSessionDate string
	Changed         bool
}

// UpdateStreak advances calendar-day streak counters for activity at
// now. Playing again on the same day is a no-op; playing on the
// following day extends the streak; any gap resets it to one.
func UpdateStreak(currentStreak, longestStreak int, lastSessionDate string, now time.Time) StreakUpdate {
	today := now.Format(dateLayout)
	if lastSessionDate == today {
		return StreakUpdate{
			CurrentStreak:   currentStreak,
			LongestStreak:   longestStreak,
			LastSessionDate: lastSessionDate,
		}
	}

	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	if lastSessionDate == yesterday {
		currentStreak++
	} else {
		currentStreak = 1
	}
	if currentStreak > longestStreak {
		longestStreak = currentStreak
	}

	return StreakUpdate{
		CurrentStreak:   currentStreak,
		LongestStreak:   longestStreak,
		LastSessionDate: today,
		Changed:         true,
	}
}
