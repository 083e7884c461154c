package adventure

import (
	"fmt"
	"math"
	"strings"

	"github.com/eyeradar/lexiquest/internal/models"
)

// frac of a sine blown up by a large constant gives a cheap
// reproducible pseudo-random in [0,1). Keyed by segment index only, so
// the road never shifts between renders.
func segmentHash(i int, salt float64) float64 {
	v := math.Sin(float64(i)*12.9898+salt*78.233) * 43758.5453
	return v - math.Floor(v)
}

func coord(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// OrganicPath connects anchor points with cubic Bezier segments whose
// control points are displaced perpendicular to the segment by a
// seeded wobble, 28% of the segment length at most. The result reads
// as hand-drawn but is identical on every call.
func OrganicPath(points []models.Position) string {
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", coord(points[0].X), coord(points[0].Y))
	if len(points) == 1 {
		return b.String()
	}

	for i := 0; i < len(points)-1; i++ {
		p0, p1 := points[i], points[i+1]
		dx := p1.X - p0.X
		dy := p1.Y - p0.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			fmt.Fprintf(&b, " L %s %s", coord(p1.X), coord(p1.Y))
			continue
		}

		// Unit perpendicular to the segment.
		px := -dy / length
		py := dx / length

		wobble := 0.28 * length
		off1 := (segmentHash(i, 1)*2 - 1) * wobble
		off2 := (segmentHash(i, 2)*2 - 1) * wobble
		t1 := 0.25 + 0.15*segmentHash(i, 3)
		t2 := 0.60 + 0.20*segmentHash(i, 4)

		c1x := p0.X + dx*t1 + px*off1
		c1y := p0.Y + dy*t1 + py*off1
		c2x := p0.X + dx*t2 + px*off2
		c2y := p0.Y + dy*t2 + py*off2

		fmt.Fprintf(&b, " C %s %s, %s %s, %s %s",
			coord(c1x), coord(c1y), coord(c2x), coord(c2y), coord(p1.X), coord(p1.Y))
	}
	return b.String()
}

// RoadPath is the plainer cubic interpolation used for the level map.
// Near-horizontal segments (row traversal) bow gently downward; the
// steeper row-to-row hops use straight-proportion control points so
// the road does not overshoot the canvas.
func RoadPath(points []models.Position) string {
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", coord(points[0].X), coord(points[0].Y))

	for i := 0; i < len(points)-1; i++ {
		p0, p1 := points[i], points[i+1]
		dx := p1.X - p0.X
		dy := p1.Y - p0.Y

		var c1x, c1y, c2x, c2y float64
		if math.Abs(dy) < math.Abs(dx)*0.3 {
			sag := 18.0
			if i%2 == 1 {
				sag = -sag
			}
			c1x = p0.X + dx*0.25
			c1y = p0.Y + sag
			c2x = p0.X + dx*0.75
			c2y = p1.Y + sag
		} else {
			c1x = p0.X + dx/3
			c1y = p0.Y + dy/3
			c2x = p0.X + 2*dx/3
			c2y = p0.Y + 2*dy/3
		}

		fmt.Fprintf(&b, " C %s %s, %s %s, %s %s",
			coord(c1x), coord(c1y), coord(c2x), coord(c2y), coord(p1.X), coord(p1.Y))
	}
	return b.String()
}

// PartialRoadPath renders the road only up to node index upto,
// inclusive. Prefixes reuse the same per-segment geometry as the full
// road, so the partial path overlays the full one exactly.
func PartialRoadPath(points []models.Position, upto int) string {
	if upto < 0 || len(points) == 0 {
		return ""
	}
	if upto >= len(points) {
		upto = len(points) - 1
	}
	return RoadPath(points[:upto+1])
}
