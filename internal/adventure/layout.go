package adventure

import (
	"math"

	"github.com/eyeradar/lexiquest/internal/models"
)

// Layout places n nodes along a serpentine path inside a w by h
// canvas. Rows fill bottom-up; even rows run left to right and odd
// rows right to left, so consecutive nodes stay adjacent. Positions
// are a pure function of n, w, and h.
func Layout(n int, w, h float64) []models.Position {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []models.Position{{X: 0.5 * w, Y: 0.7 * h}}
	}

	// Aim for roughly three nodes per row, never fewer than two.
	targetRows := math.Ceil(float64(n) / 3)
	nodesPerRow := int(math.Max(2, math.Ceil(float64(n)/targetRows)))
	rowCount := int(math.Ceil(float64(n) / float64(nodesPerRow)))

	marginX := 0.1 * w
	usableW := w - 2*marginX
	topY := 0.12 * h
	bottomY := 0.88 * h

	rowStep := 0.0
	if rowCount > 1 {
		rowStep = (bottomY - topY) / float64(rowCount-1)
	}

	positions := make([]models.Position, 0, n)
	for row := 0; row < rowCount; row++ {
		start := row * nodesPerRow
		count := nodesPerRow
		if start+count > n {
			count = n - start
		}
		y := bottomY - float64(row)*rowStep

		for i := 0; i < count; i++ {
			var x float64
			if count == 1 {
				x = 0.5 * w
			} else {
				x = marginX + usableW*float64(i)/float64(count-1)
			}
			if row%2 == 1 {
				x = w - x
			}
			positions = append(positions, models.Position{X: x, Y: y})
		}
	}
	return positions
}
