package object

import (
	"math/rand"
	"time"
)

// ObstacleSpawner creates a new obstacle each time a wall-clock interval
// elapses. The cadence accumulates measured frame deltas, not tick counts,
// so obstacle spacing stays stable under variable frame rates.
type ObstacleSpawner struct {
	Interval  time.Duration
	GapHeight float64
	Margin    float64

	elapsed time.Duration
	rng     *rand.Rand
}

// NewObstacleSpawner creates a spawner with the given cadence and gap height.
func NewObstacleSpawner(interval time.Duration, gapHeight float64) *ObstacleSpawner {
	if gapHeight <= 0 {
		gapHeight = DefaultGapHeight
	}
	return &ObstacleSpawner{
		Interval:  interval,
		GapHeight: gapHeight,
		Margin:    GapMargin,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Update spawns an obstacle at the field's right edge when the interval has
// elapsed. The gap position is drawn uniformly so the full gap stays inside
// the field with the configured top/bottom margins.
func (s *ObstacleSpawner) Update(ctx UpdateContext) (bool, error) {
	s.elapsed += ctx.Delta
	if s.elapsed < s.Interval {
		return false, nil
	}
	s.elapsed -= s.Interval

	span := ctx.Field.Height - 2*s.Margin - s.GapHeight
	if span < 0 {
		span = 0
	}
	gapY := s.Margin + s.rng.Float64()*span

	if ctx.Spawner != nil {
		ctx.Spawner.Spawn(NewObstacle(ctx.Field.Width, gapY, s.GapHeight, s.rng.Int63()))
	}
	return false, nil
}

// Draw is a no-op; the spawner is not visible.
func (s *ObstacleSpawner) Draw(_ DrawContext) error {
	return nil
}
