package object

// Obstacle defaults. Gap height is the difficulty knob; it is fixed per game
// rather than varied per obstacle.
const (
	ObstacleWidth    = 80.0
	ObstacleSpeed    = 2.5 // Logical units per nominal tick
	DefaultGapHeight = 250.0
	GapMargin        = 50.0 // Minimum distance between gap and field edge
)

// Obstacle is a vertical pair of blocking regions with a passable gap.
// X is the left edge and decreases every tick until the obstacle scrolls
// fully off the trailing edge of the field.
type Obstacle struct {
	X         float64 // Left edge
	GapY      float64 // Top of the gap
	GapHeight float64
	Width     float64
	Speed     float64 // Logical units per nominal tick
	Seed      int64   // Visual variation of the block texture
}

// NewObstacle creates an obstacle whose left edge is at x.
// The caller guarantees the gap respects the field margins.
func NewObstacle(x, gapY, gapHeight float64, seed int64) *Obstacle {
	return &Obstacle{
		X:         x,
		GapY:      gapY,
		GapHeight: gapHeight,
		Width:     ObstacleWidth,
		Speed:     ObstacleSpeed,
		Seed:      seed,
	}
}

// GapBottom returns the Y coordinate of the lower gap edge.
func (o *Obstacle) GapBottom() float64 {
	return o.GapY + o.GapHeight
}

// Right returns the X coordinate of the right edge.
func (o *Obstacle) Right() float64 {
	return o.X + o.Width
}

// Update advances the obstacle leftward and removes it once its trailing
// edge has fully passed the field's left boundary.
func (o *Obstacle) Update(ctx UpdateContext) (bool, error) {
	o.X -= o.Speed * ctx.Steps
	return o.X < -o.Width, nil
}

// Draw renders the two blocking regions around the gap. The seed varies the
// lip caps at the gap edges so obstacles are not visually identical.
func (o *Obstacle) Draw(ctx DrawContext) error {
	// Upper block: from the field top down to the gap
	if o.GapY > 0 {
		ctx.Canvas.FillRect(o.X, 0, o.Right(), o.GapY)
	}
	// Lower block: from the gap bottom to the field bottom
	fieldHeight := ctx.Canvas.LogicalHeight()
	if o.GapBottom() < fieldHeight {
		ctx.Canvas.FillRect(o.X, o.GapBottom(), o.Right(), fieldHeight)
	}

	// Lip caps, slightly wider than the column, with seed-based overhang
	overhang := 3.0 + float64(o.Seed%4)
	lipDepth := 10.0
	if o.GapY > lipDepth {
		ctx.Canvas.FillRect(o.X-overhang, o.GapY-lipDepth, o.Right()+overhang, o.GapY)
	}
	if o.GapBottom()+lipDepth < fieldHeight {
		ctx.Canvas.FillRect(o.X-overhang, o.GapBottom(), o.Right()+overhang, o.GapBottom()+lipDepth)
	}

	return nil
}
