package object

import (
	"math"

	"github.com/1Sankalp/VoiceFlight/internal/draw"
	"github.com/1Sankalp/VoiceFlight/internal/physics"
)

// Glider is the player-controlled flyer. It holds a fixed horizontal
// position; ambient sound volume is its only control input. Loud input
// produces lift, silence lets gravity win.
type Glider struct {
	X, Y     float64 // Position (center). X never changes during play.
	VY       float64 // Vertical velocity (positive = downward)
	Rotation float64 // Banking angle in radians, eased toward velocity

	Gravity           float64 // Downward acceleration per nominal tick
	Damping           float64 // Velocity decay per nominal tick (< 1, models drag)
	MaxVelocity       float64 // Symmetric velocity clamp
	LiftThreshold     float64 // Volume below this produces zero lift
	LiftGain          float64 // Upward velocity per volume unit above threshold
	RotationGain      float64 // Target banking angle per velocity unit
	RotationSmoothing float64 // Easing factor toward the banking target

	Width, Height float64 // Visual sprite size
	HitboxInsetX  float64 // Hitbox shrink per side (forgiving collision)
	HitboxInsetY  float64

	Sprite *Sprite // Optional art; nil or not-loaded falls back to a polygon
}

// NewGlider creates a glider at the given position with the standard tuning.
func NewGlider(x, y float64) *Glider {
	return &Glider{
		X:                 x,
		Y:                 y,
		Gravity:           0.25,
		Damping:           0.97,
		MaxVelocity:       8.0,
		LiftThreshold:     5.0,
		LiftGain:          0.08,
		RotationGain:      0.055,
		RotationSmoothing: 0.15,
		Width:             58,
		Height:            40,
		HitboxInsetX:      12,
		HitboxInsetY:      8,
	}
}

// Step advances the flight dynamics by the given number of nominal ticks.
// steps is the measured frame delta expressed in 60Hz ticks, so flight speed
// does not depend on render cadence.
func (g *Glider) Step(volume, steps, fieldHeight float64) {
	g.VY += g.Gravity * steps

	if lift := (volume - g.LiftThreshold) * g.LiftGain; lift > 0 {
		g.VY -= lift * steps
	}

	g.VY *= math.Pow(g.Damping, steps)
	g.VY = physics.Clamp(g.VY, -g.MaxVelocity, g.MaxVelocity)

	g.Y += g.VY * steps
	half := g.Height / 2
	g.Y = physics.Clamp(g.Y, half, fieldHeight-half)

	// Ease the banking angle toward the velocity-derived target.
	target := g.VY * g.RotationGain
	factor := g.RotationSmoothing * steps
	if factor > 1 {
		factor = 1
	}
	g.Rotation += (target - g.Rotation) * factor
}

// Update implements Object.
func (g *Glider) Update(ctx UpdateContext) (bool, error) {
	g.Step(ctx.Volume, ctx.Steps, ctx.Field.Height)
	return false, nil
}

// Bounds returns the full body rectangle. Boundary collisions use this;
// the clamp in Step pins it exactly to the field edge when the glider hits
// the ceiling or the floor.
func (g *Glider) Bounds() physics.Rect {
	return physics.NewRect(g.X, g.Y, g.Width, g.Height)
}

// Hitbox returns the collision rectangle, inset from the visual sprite.
func (g *Glider) Hitbox() physics.Rect {
	return physics.NewRect(g.X, g.Y,
		g.Width-2*g.HitboxInsetX,
		g.Height-2*g.HitboxInsetY)
}

// Draw renders the glider: the loaded sprite when available, otherwise a
// banked dart polygon.
func (g *Glider) Draw(ctx DrawContext) error {
	if g.Sprite.Loaded() {
		g.Sprite.DrawRotated(ctx.Canvas, g.X, g.Y, g.Rotation)
		return nil
	}

	sin, cos := math.Sincos(g.Rotation)
	rotate := func(dx, dy float64) draw.Point {
		return draw.Point{
			X: g.X + dx*cos - dy*sin,
			Y: g.Y + dx*sin + dy*cos,
		}
	}

	halfW := g.Width / 2
	halfH := g.Height / 2

	points := ctx.Canvas.BorrowPoints(4)
	points[0] = rotate(halfW, 0)       // Nose
	points[1] = rotate(-halfW, -halfH) // Upper tail
	points[2] = rotate(-halfW*0.45, 0) // Tail notch
	points[3] = rotate(-halfW, halfH)  // Lower tail
	ctx.Canvas.DrawPolygon(points, true)

	return nil
}
