package loop

import (
	"github.com/1Sankalp/VoiceFlight/internal/object"
	"github.com/1Sankalp/VoiceFlight/internal/physics"
)

// impactPoint is where a collision happened, in logical field coordinates.
type impactPoint struct {
	X, Y float64
}

// detectCollision reports whether the glider touches a field boundary or an
// obstacle. Boundaries are checked against the full body rect (the flight
// clamp pins it exactly to the edge), obstacles against the smaller, more
// forgiving hitbox. It is a pure predicate over the positions produced by
// the current tick; it never mutates its inputs.
func detectCollision(body, hb physics.Rect, field object.Field, obstacles []*object.Obstacle) (impactPoint, bool) {
	if body.Top <= 0 {
		return impactPoint{X: body.CenterX(), Y: 0}, true
	}
	if body.Bottom >= field.Height {
		return impactPoint{X: body.CenterX(), Y: field.Height}, true
	}

	for _, o := range obstacles {
		if !physics.RangesOverlap(hb.Left, hb.Right, o.X, o.Right()) {
			continue
		}
		// Horizontally inside the obstacle: safe only fully within the gap.
		if hb.Top < o.GapY {
			return impactPoint{X: hb.CenterX(), Y: hb.Top}, true
		}
		if hb.Bottom > o.GapBottom() {
			return impactPoint{X: hb.CenterX(), Y: hb.Bottom}, true
		}
	}

	return impactPoint{}, false
}

// collectObstacles extracts obstacles from the object list into dst,
// reusing its backing array across ticks.
func collectObstacles(objects []object.Object, dst []*object.Obstacle) []*object.Obstacle {
	for _, obj := range objects {
		if o, ok := obj.(*object.Obstacle); ok {
			dst = append(dst, o)
		}
	}
	return dst
}
