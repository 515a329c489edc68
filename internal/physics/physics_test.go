package physics

import "testing"

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		aMin, aMax, bMin, bMax float64
		want                   bool
	}{
		{"Disjoint", 0, 10, 20, 30, false},
		{"Touching", 0, 10, 10, 20, true},
		{"Contained", 0, 100, 40, 60, true},
		{"Partial", 0, 10, 5, 15, true},
		{"Reversed disjoint", 20, 30, 0, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangesOverlap(tt.aMin, tt.aMax, tt.bMin, tt.bMax); got != tt.want {
				t.Errorf("RangesOverlap(%v,%v,%v,%v) = %v, want %v",
					tt.aMin, tt.aMax, tt.bMin, tt.bMax, got, tt.want)
			}
		})
	}
}

func TestNewRect(t *testing.T) {
	r := NewRect(160, 300, 58, 40)
	if r.Left != 131 || r.Right != 189 || r.Top != 280 || r.Bottom != 320 {
		t.Errorf("unexpected rect: %+v", r)
	}
	if r.Width() != 58 || r.Height() != 40 {
		t.Errorf("unexpected size: %v x %v", r.Width(), r.Height())
	}
	if r.CenterX() != 160 || r.CenterY() != 300 {
		t.Errorf("unexpected center: %v, %v", r.CenterX(), r.CenterY())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%v,%v,%v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}
