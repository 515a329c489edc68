// Package physics provides axis-aligned collision predicates and clamps.
package physics

// Rect is an axis-aligned rectangle in logical field coordinates.
// Top < Bottom; the Y axis grows downward (terminal convention).
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect builds a Rect from a center position and full width/height.
func NewRect(centerX, centerY, width, height float64) Rect {
	return Rect{
		Left:   centerX - width/2,
		Top:    centerY - height/2,
		Right:  centerX + width/2,
		Bottom: centerY + height/2,
	}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// RangesOverlap reports whether the intervals [aMin,aMax] and [bMin,bMax]
// share any point.
func RangesOverlap(aMin, aMax, bMin, bMax float64) bool {
	return aMin <= bMax && bMin <= aMax
}

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
