// Package object contains the game entities: the glider, obstacles, the
// obstacle spawner, scenery and visual effects.
package object

import (
	"io"
	"time"

	"github.com/1Sankalp/VoiceFlight/internal/draw"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Field is the logical playfield in which all objects live. The Y axis grows
// downward; (0,0) is the top-left corner.
type Field struct {
	Width  float64
	Height float64
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration // Measured wall-clock frame time
	Steps   float64       // Delta expressed in nominal 60Hz ticks
	Volume  float64       // Current volume sample
	Field   Field
	Spawner Spawner
	Objects []Object
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // Scaled half-block canvas (shapes)
	Writer io.Writer    // Direct terminal output (text overlays)
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object. Use ctx.Canvas for shapes, ctx.Writer for text.
	Draw(ctx DrawContext) error
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}
