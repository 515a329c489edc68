package object

import (
	"math"

	"github.com/1Sankalp/VoiceFlight/internal/draw"
)

// sceneryWrap keeps the scroll accumulator bounded.
const sceneryWrap = 1 << 16

// Scenery draws the decorative parallax background: a rolling ridge along
// the field bottom and a few clouds drifting at a slower rate. Purely
// visual; nothing collides with it.
type Scenery struct {
	ScrollSpeed float64 // Logical units per nominal tick
	scroll      float64
}

// NewScenery creates the background with the standard scroll speed.
func NewScenery() *Scenery {
	return &Scenery{ScrollSpeed: 0.8}
}

// Update accumulates the scroll offset.
func (s *Scenery) Update(ctx UpdateContext) (bool, error) {
	s.scroll += s.ScrollSpeed * ctx.Steps
	if s.scroll > sceneryWrap {
		s.scroll -= sceneryWrap
	}
	return false, nil
}

// Draw renders the ridge and clouds offset by the accumulated scroll.
func (s *Scenery) Draw(ctx DrawContext) error {
	w := ctx.Canvas.LogicalWidth()
	h := ctx.Canvas.LogicalHeight()

	// Ridge: overlapping sine waves sampled across the field width
	const step = 16.0
	prev := draw.Point{}
	for x := 0.0; x <= w; x += step {
		t := x + s.scroll
		y := h - 30 - 18*math.Sin(t*0.011) - 9*math.Sin(t*0.029)
		p := draw.Point{X: x, Y: y}
		if x > 0 {
			ctx.Canvas.DrawLine(prev, p)
		}
		prev = p
	}

	// Clouds drift at a slower parallax rate and wrap around the field
	cloudScroll := s.scroll * 0.35
	lanes := []struct{ y, phase float64 }{
		{80, 0},
		{150, 260},
		{110, 540},
	}
	for _, lane := range lanes {
		x := math.Mod(lane.phase-cloudScroll, w)
		if x < 0 {
			x += w
		}
		drawCloud(ctx.Canvas, x, lane.y)
	}

	return nil
}

// drawCloud renders a small lens-shaped outline at (x, y).
func drawCloud(c *draw.Canvas, x, y float64) {
	const halfWidth = 28.0
	for dx := -halfWidth; dx <= halfWidth; dx += 4 {
		bulge := 7 * math.Cos(dx/halfWidth*math.Pi/2)
		c.SetFloat(x+dx, y-bulge)
		c.SetFloat(x+dx, y+bulge*0.4)
	}
}
