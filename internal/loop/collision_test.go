package loop

import (
	"testing"

	"github.com/1Sankalp/VoiceFlight/internal/object"
	"github.com/1Sankalp/VoiceFlight/internal/physics"
)

func testField() object.Field {
	return object.Field{Width: 800, Height: 600}
}

// gliderRects builds the body and hitbox rectangles of a glider at (x, y).
func gliderRects(x, y float64) (body, hb physics.Rect) {
	g := object.NewGlider(x, y)
	return g.Bounds(), g.Hitbox()
}

func TestDetectCollisionBounds(t *testing.T) {
	tests := []struct {
		name    string
		centerY float64
		hit     bool
	}{
		{"center of field", 300, false},
		{"clamped to ceiling", 20, true}, // body top = 0
		{"clamped to floor", 580, true},  // body bottom = 600
		{"just below ceiling", 20.5, false},
		{"just above floor", 579.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, hb := gliderRects(160, tt.centerY)
			_, hit := detectCollision(body, hb, testField(), nil)
			if hit != tt.hit {
				t.Errorf("hit = %v, want %v", hit, tt.hit)
			}
		})
	}
}

func TestDetectCollisionObstacle(t *testing.T) {
	// Obstacle spanning the glider horizontally, gap from 50 to 300.
	// The glider hitbox is 24 tall (12 above and below center).
	obstacle := object.NewObstacle(140, 50, 250, 0)
	obstacles := []*object.Obstacle{obstacle}

	tests := []struct {
		name    string
		centerY float64
		hit     bool
	}{
		{"fully inside gap", 175, false},
		{"near gap top but inside", 62.5, false}, // hitbox 50.5..74.5
		{"poking above gap", 60, true},           // hitbox top 48 < 50
		{"near gap bottom but inside", 287, false},
		{"poking below gap", 290, true}, // hitbox bottom 302 > 300
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, hb := gliderRects(160, tt.centerY)
			_, hit := detectCollision(body, hb, testField(), obstacles)
			if hit != tt.hit {
				t.Errorf("hit = %v, want %v", hit, tt.hit)
			}
		})
	}
}

func TestDetectCollisionNoHorizontalOverlap(t *testing.T) {
	// Same vertical miss, but the obstacle is far to the right.
	obstacle := object.NewObstacle(500, 50, 250, 0)
	body, hb := gliderRects(160, 60)
	_, hit := detectCollision(body, hb, testField(), []*object.Obstacle{obstacle})
	if hit {
		t.Error("collision reported without horizontal overlap")
	}
}

func TestDetectCollisionForgivingHitbox(t *testing.T) {
	// The body overlaps the obstacle column but the inset hitbox does not:
	// no crash. Visual grazes are forgiven.
	obstacle := object.NewObstacle(140, 50, 250, 0)
	body, hb := gliderRects(160, 66) // body top 46 < 50, hitbox top 54 >= 50
	if body.Top >= obstacle.GapY {
		t.Fatal("test setup: body does not graze the obstacle")
	}
	_, hit := detectCollision(body, hb, testField(), []*object.Obstacle{obstacle})
	if hit {
		t.Error("graze within hitbox inset reported as crash")
	}
}

func TestDetectCollisionIsPure(t *testing.T) {
	obstacle := object.NewObstacle(140, 50, 250, 3)
	obstacles := []*object.Obstacle{obstacle}
	body, hb := gliderRects(160, 60)
	before := *obstacle

	p1, hit1 := detectCollision(body, hb, testField(), obstacles)
	p2, hit2 := detectCollision(body, hb, testField(), obstacles)

	if hit1 != hit2 || p1 != p2 {
		t.Errorf("repeated calls disagree: (%v,%v) vs (%v,%v)", p1, hit1, p2, hit2)
	}
	if *obstacle != before {
		t.Error("detectCollision mutated an obstacle")
	}
}

func TestCollectObstacles(t *testing.T) {
	objects := []object.Object{
		object.NewScenery(),
		object.NewObstacle(800, 100, 250, 0),
		object.NewGlider(160, 300),
		object.NewObstacle(400, 200, 250, 1),
	}

	var buf []*object.Obstacle
	buf = collectObstacles(objects, buf[:0])
	if len(buf) != 2 {
		t.Fatalf("collected %d obstacles, want 2", len(buf))
	}

	// Reusing the buffer must not carry over stale entries.
	buf = collectObstacles(objects[:1], buf[:0])
	if len(buf) != 0 {
		t.Errorf("collected %d obstacles from scenery only, want 0", len(buf))
	}
}
