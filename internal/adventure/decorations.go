package adventure

import (
	"math"

	"github.com/eyeradar/lexiquest/internal/models"
)

// vignette is a themed cluster of scenery items placed around one
// anchor, offsets in pixels.
type vignette struct {
	items []vignetteItem
}

type vignetteItem struct {
	kind string
	dx   float64
	dy   float64
	size float64
}

var vignettes = []vignette{
	{items: []vignetteItem{
		{"tree", 0, 0, 1.1}, {"pine", 42, 10, 0.9}, {"bush", -32, 20, 0.7},
	}},
	{items: []vignetteItem{
		{"flower", 0, 0, 0.8}, {"grass", 26, 8, 0.7}, {"mushroom", -22, 12, 0.6}, {"flower", 40, -6, 0.6},
	}},
	{items: []vignetteItem{
		{"rock", 0, 0, 1.0}, {"rock", 30, 14, 0.6}, {"grass", -20, 10, 0.7},
	}},
	{items: []vignetteItem{
		{"pond", 0, 0, 1.2}, {"grass", 48, 6, 0.7}, {"bush", -40, 16, 0.8},
	}},
	{items: []vignetteItem{
		{"stump", 0, 0, 0.9}, {"lantern", 24, -10, 0.7}, {"signpost", -28, 6, 0.8},
	}},
	{items: []vignetteItem{
		{"hill", 0, 6, 1.3}, {"tree", 34, -18, 0.8}, {"cloud", -10, -52, 0.9},
	}},
}

var soloKinds = []string{
	"tree", "pine", "bush", "rock", "flower", "mushroom", "stump",
	"grass", "pond", "cloud", "hill", "fence", "lantern", "crystal",
	"signpost",
}

// Anchor zones as canvas fractions, hand-tuned around the serpentine
// path. Roughly 40% of the canvas is deliberately left bare so the map
// does not read as cluttered.
var decorationAnchors = [][2]float64{
	{0.06, 0.10}, {0.30, 0.06}, {0.58, 0.09}, {0.84, 0.07},
	{0.95, 0.26}, {0.04, 0.34}, {0.48, 0.32}, {0.93, 0.48},
	{0.05, 0.58}, {0.35, 0.55}, {0.70, 0.58}, {0.96, 0.72},
	{0.08, 0.86}, {0.45, 0.93}, {0.80, 0.90},
}

// WorldDecorations scatters scenery for one world. Output is a pure
// function of worldIndex: each anchor draws either a themed vignette
// or a solo piece from a sin-hash stream keyed by the world seed, with
// positional jitter and an occasional horizontal flip.
func WorldDecorations(worldIndex int, w, h float64) []models.DecorationPlacement {
	seed := float64(worldIndex * 137)
	rnd := func(i int) float64 {
		v := math.Sin(seed+float64(i)*13.37) * 10000
		return v - math.Floor(v)
	}
	clampX := func(x float64) float64 { return math.Min(math.Max(x, 10), w-20) }
	clampY := func(y float64) float64 { return math.Min(math.Max(y, 10), h-20) }

	var out []models.DecorationPlacement
	for k, anchor := range decorationAnchors {
		base := k * 7
		ax := anchor[0]*w + (rnd(base)*2-1)*25
		ay := anchor[1]*h + (rnd(base+1)*2-1)*20
		flip := rnd(base+2) < 0.5

		if rnd(base+3) < 0.7 {
			vg := vignettes[int(rnd(base+4)*float64(len(vignettes)))%len(vignettes)]
			for _, it := range vg.items {
				dx := it.dx
				if flip {
					dx = -dx
				}
				out = append(out, models.DecorationPlacement{
					Kind: it.kind,
					X:    clampX(ax + dx),
					Y:    clampY(ay + it.dy),
					Size: it.size,
					Flip: flip,
				})
			}
		} else {
			kind := soloKinds[int(rnd(base+5)*float64(len(soloKinds)))%len(soloKinds)]
			out = append(out, models.DecorationPlacement{
				Kind: kind,
				X:    clampX(ax),
				Y:    clampY(ay),
				Size: 0.7 + 0.6*rnd(base+6),
				Flip: flip,
			})
		}
	}
	return out
}
