// Package adventure computes the procedural adventure map: level
// progression, checkpoint insertion, serpentine layout, the connective
// road path, and seeded scenery. Everything here is a pure function of
// its inputs; the same games and sessions always render the same map.
package adventure

// Stars grades a session accuracy (percentage) on a 1 to 3 scale.
// Out-of-range input falls through the same comparisons, so anything
// below 60 earns 1 star and anything at or above 85 earns 3.
func Stars(accuracy float64) int {
	switch {
	case accuracy >= 85:
		return 3
	case accuracy >= 60:
		return 2
	default:
		return 1
	}
}
