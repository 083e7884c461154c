package adventure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldDecorations_Deterministic(t *testing.T) {
	first := WorldDecorations(0, 1200, 750)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, WorldDecorations(0, 1200, 750))
	}
}

func TestWorldDecorations_DistinctPerWorld(t *testing.T) {
	a := WorldDecorations(0, 1200, 750)
	b := WorldDecorations(1, 1200, 750)
	assert.NotEqual(t, a, b)
}

func TestWorldDecorations_WithinBounds(t *testing.T) {
	for world := 0; world < 6; world++ {
		decos := WorldDecorations(world, 1200, 750)
		require.NotEmpty(t, decos)
		for i, d := range decos {
			assert.GreaterOrEqual(t, d.X, 10.0, "world %d deco %d", world, i)
			assert.LessOrEqual(t, d.X, 1180.0, "world %d deco %d", world, i)
			assert.GreaterOrEqual(t, d.Y, 10.0, "world %d deco %d", world, i)
			assert.LessOrEqual(t, d.Y, 730.0, "world %d deco %d", world, i)
			assert.NotEmpty(t, d.Kind)
			assert.Greater(t, d.Size, 0.0)
		}
	}
}

func TestWorldDecorations_AnchorsDrawVignettesAndSolos(t *testing.T) {
	// 15 anchors emit at least one item each; vignettes emit several.
	decos := WorldDecorations(2, 1200, 750)
	assert.GreaterOrEqual(t, len(decos), len(decorationAnchors))

	kinds := make(map[string]bool)
	for _, d := range decos {
		kinds[d.Kind] = true
	}
	assert.GreaterOrEqual(t, len(kinds), 3)
}
