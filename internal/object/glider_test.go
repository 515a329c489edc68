package object

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestGliderFallsInSilence(t *testing.T) {
	g := NewGlider(160, 300)

	g.Step(0, 1, 600)

	wantVY := 0.25 * 0.97
	if math.Abs(g.VY-wantVY) > 1e-9 {
		t.Errorf("VY = %v, want %v", g.VY, wantVY)
	}
	wantY := 300 + wantVY
	if math.Abs(g.Y-wantY) > 1e-9 {
		t.Errorf("Y = %v, want %v", g.Y, wantY)
	}
}

func TestGliderLiftThreshold(t *testing.T) {
	// Volume at or below the threshold must behave exactly like silence.
	for _, vol := range []float64{0, 2.5, 5.0} {
		silent := NewGlider(160, 300)
		quiet := NewGlider(160, 300)
		silent.Step(0, 1, 600)
		quiet.Step(vol, 1, 600)
		if silent.VY != quiet.VY || silent.Y != quiet.Y {
			t.Errorf("volume %v produced lift: VY %v vs %v", vol, quiet.VY, silent.VY)
		}
	}

	// Above the threshold the glider must accelerate upward relative to silence.
	silent := NewGlider(160, 300)
	loud := NewGlider(160, 300)
	silent.Step(0, 1, 600)
	loud.Step(40, 1, 600)
	if loud.VY >= silent.VY {
		t.Errorf("loud VY %v not less than silent VY %v", loud.VY, silent.VY)
	}
}

func TestGliderStaysInField(t *testing.T) {
	const fieldHeight = 600.0
	g := NewGlider(160, fieldHeight/2)
	rng := rand.New(rand.NewSource(7))

	half := g.Height / 2
	for i := 0; i < 5000; i++ {
		g.Step(rng.Float64()*120, 0.5+rng.Float64(), fieldHeight)
		if g.Y < half || g.Y > fieldHeight-half {
			t.Fatalf("step %d: Y = %v outside [%v, %v]", i, g.Y, half, fieldHeight-half)
		}
		if math.Abs(g.VY) > g.MaxVelocity {
			t.Fatalf("step %d: VY = %v exceeds clamp %v", i, g.VY, g.MaxVelocity)
		}
	}
}

func TestGliderVelocityClamp(t *testing.T) {
	g := NewGlider(160, 300)
	for i := 0; i < 200; i++ {
		g.Step(0, 1, 10000)
	}
	if g.VY > g.MaxVelocity {
		t.Errorf("free fall VY = %v exceeds %v", g.VY, g.MaxVelocity)
	}
	for i := 0; i < 200; i++ {
		g.Step(500, 1, 10000)
	}
	if g.VY < -g.MaxVelocity {
		t.Errorf("max lift VY = %v exceeds %v", g.VY, -g.MaxVelocity)
	}
}

func TestGliderHitboxInset(t *testing.T) {
	g := NewGlider(160, 300)
	hb := g.Hitbox()

	if got, want := hb.Width(), g.Width-2*g.HitboxInsetX; math.Abs(got-want) > 1e-9 {
		t.Errorf("hitbox width = %v, want %v", got, want)
	}
	if got, want := hb.Height(), g.Height-2*g.HitboxInsetY; math.Abs(got-want) > 1e-9 {
		t.Errorf("hitbox height = %v, want %v", got, want)
	}
	if hb.CenterX() != g.X || hb.CenterY() != g.Y {
		t.Errorf("hitbox center = (%v, %v), want (%v, %v)", hb.CenterX(), hb.CenterY(), g.X, g.Y)
	}
}

func TestGliderDeltaScaling(t *testing.T) {
	// Two half steps must land close to one full step.
	whole := NewGlider(160, 300)
	split := NewGlider(160, 300)

	whole.Step(0, 1, 600)
	split.Step(0, 0.5, 600)
	split.Step(0, 0.5, 600)

	if math.Abs(whole.Y-split.Y) > 0.1 {
		t.Errorf("split stepping diverged: %v vs %v", split.Y, whole.Y)
	}
}

func TestGliderUpdateUsesContext(t *testing.T) {
	g := NewGlider(160, 300)
	remove, err := g.Update(UpdateContext{
		Delta: 16 * time.Millisecond,
		Steps: 1,
		Field: Field{Width: 800, Height: 600},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if remove {
		t.Error("glider must never request removal")
	}
	if g.Y == 300 {
		t.Error("Update did not advance the glider")
	}
}
