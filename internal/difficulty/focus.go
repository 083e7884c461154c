package difficulty

import (
	"sort"

	"github.com/eyeradar/lexiquest/internal/models"
)

// RecommendFocus ranks deficit areas by practice urgency. Severity
// dominates; under-practiced and declining areas climb, a freshly
// improving area gets a momentum bonus, and well-mastered areas sink.
// history holds recent accuracies per area, oldest to newest.
func RecommendFocus(severities map[models.DeficitArea]int, history map[models.DeficitArea][]float64) []models.AreaFocus {
	recs := make([]models.AreaFocus, 0, len(severities))

	for area, severity := range severities {
		recent := history[area]
		count := len(recent)

		priority := severity * 2
		if count < 3 {
			priority += 3
		} else if count < 5 {
			priority++
		}

		trend := Trend(recent)
		if trend == TrendDeclining {
			priority += 2
		}
		if trend == TrendImproving && count >= 2 && recent[count-1] > recent[count-2] {
			priority++
		}

		var avg float64
		if count > 0 {
			for _, a := range recent {
				avg += a
			}
			avg /= float64(count)
		}
		if avg > 90 && count >= 10 {
			priority -= 2
		}
		if priority < 1 {
			priority = 1
		}

		recs = append(recs, models.AreaFocus{
			Area:              area,
			Severity:          severity,
			Priority:          priority,
			SessionsCompleted: count,
			AvgAccuracy:       avg,
			Trend:             trend,
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Priority != recs[j].Priority {
			return recs[i].Priority > recs[j].Priority
		}
		return recs[i].Area < recs[j].Area
	})
	return recs
}
