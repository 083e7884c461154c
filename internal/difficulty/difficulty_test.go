package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyeradar/lexiquest/internal/models"
)

func TestInitialLevel(t *testing.T) {
	tests := []struct {
		name     string
		age      int
		severity int
		want     int
	}{
		{"young neutral", 5, 3, 1},
		{"eight neutral", 8, 3, 3},
		{"eight mild deficit starts higher", 8, 1, 4},
		{"eight severe deficit starts lower", 8, 5, 2},
		{"teen neutral", 14, 3, 6},
		{"young severe clamps at floor", 4, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InitialLevel(tt.age, tt.severity))
		})
	}
}

func TestWeightedAccuracy_FavorsRecent(t *testing.T) {
	// Oldest 40, newest 100: the weighted mean must sit above the
	// plain mean of 70.
	acc, ok := WeightedAccuracy([]float64{40, 100})
	require.True(t, ok)
	assert.Greater(t, acc, 70.0)

	_, ok = WeightedAccuracy(nil)
	assert.False(t, ok)
}

func TestTrend(t *testing.T) {
	assert.Equal(t, TrendInsufficientData, Trend([]float64{90, 90, 90, 90}))
	assert.Equal(t, TrendImproving, Trend([]float64{50, 55, 70, 75, 80}))
	assert.Equal(t, TrendDeclining, Trend([]float64{80, 75, 70, 55, 50}))
	assert.Equal(t, TrendStable, Trend([]float64{70, 72, 71, 69, 70}))
}

func TestNextLevel(t *testing.T) {
	tests := []struct {
		name    string
		current int
		recent  []float64
		want    int
	}{
		{"no history uses initial level", 7, nil, 3},
		{"high accuracy steps up", 3, []float64{88, 87, 89}, 4},
		{"warm-up blocks early increase", 3, []float64{95, 95}, 3},
		{"low accuracy steps down without warm-up", 3, []float64{40, 45}, 2},
		{"three straight struggles drop two", 5, []float64{70, 45, 40, 42}, 3},
		{"three straight excellences raise two", 5, []float64{95, 96, 97}, 7},
		{"declining trend forces decrease", 5, []float64{80, 78, 70, 52, 48}, 4},
		{"steady improvement nudges up in maintain band", 4, []float64{55, 60, 80, 85, 84}, 5},
		{"clamped at ceiling", 10, []float64{95, 96, 97}, 10},
		{"clamped at floor", 1, []float64{30, 30, 30}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextLevel(8, 3, tt.current, tt.recent))
		})
	}
}

func TestParamsForLevel(t *testing.T) {
	low := ParamsForLevel(1)
	assert.Equal(t, models.SessionParams{ItemCount: 10, TimeLimitSeconds: 28, HintsAvailable: 5, DistractorCount: 1}, low)

	high := ParamsForLevel(10)
	assert.Equal(t, models.SessionParams{ItemCount: 28, TimeLimitSeconds: 10, HintsAvailable: 0, DistractorCount: 3}, high)
}

func TestRecommendFocus(t *testing.T) {
	severities := map[models.DeficitArea]int{
		models.PhonologicalAwareness: 5,
		models.ReadingFluency:        2,
		models.Comprehension:         3,
	}
	tenHigh := []float64{95, 95, 95, 95, 95, 95, 95, 95, 95, 95}
	history := map[models.DeficitArea][]float64{
		models.PhonologicalAwareness: nil,     // severe and unpracticed
		models.ReadingFluency:        tenHigh, // mastered
		models.Comprehension:         {80, 75, 70, 55, 50},
	}

	recs := RecommendFocus(severities, history)
	require.Len(t, recs, 3)

	// Severe + unpracticed: 5*2+3 = 13. Declining mid-severity:
	// 3*2+2 = 8. Mastered: 2*2-2 = 2.
	assert.Equal(t, models.PhonologicalAwareness, recs[0].Area)
	assert.Equal(t, 13, recs[0].Priority)
	assert.Equal(t, models.Comprehension, recs[1].Area)
	assert.Equal(t, TrendDeclining, recs[1].Trend)
	assert.Equal(t, models.ReadingFluency, recs[2].Area)
	assert.Equal(t, 2, recs[2].Priority)
}
