package object

import (
	"bufio"
	"math"
	"os"

	"github.com/1Sankalp/VoiceFlight/internal/draw"
)

// SpriteStatus tells whether sprite art is available for drawing.
type SpriteStatus int

const (
	SpriteNotLoaded SpriteStatus = iota
	SpriteLoaded
)

// spriteCellSize is the logical size of one text-art cell.
const spriteCellSize = 4.0

// Sprite is custom glider art loaded from a text file. Each non-space rune
// in the file becomes one filled cell; the cells are stored as offsets from
// the art's center so the sprite can be drawn rotated around it.
type Sprite struct {
	Status SpriteStatus
	cells  []draw.Point // Offsets from the sprite center, in logical units
}

// LoadSprite reads text art from path. A missing or empty file yields a
// not-loaded sprite; callers fall back to the built-in shape.
func LoadSprite(path string) *Sprite {
	s := &Sprite{Status: SpriteNotLoaded}
	if path == "" {
		return s
	}

	f, err := os.Open(path)
	if err != nil {
		return s
	}
	defer f.Close()

	var cells []draw.Point
	maxCol := 0
	row := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		col := 0
		for _, r := range scanner.Text() {
			if r != ' ' && r != '\t' {
				cells = append(cells, draw.Point{X: float64(col), Y: float64(row)})
				if col > maxCol {
					maxCol = col
				}
			}
			col++
		}
		row++
	}
	if scanner.Err() != nil || len(cells) == 0 {
		return s
	}

	// Re-center the cells and scale to logical units
	cx := float64(maxCol) / 2
	cy := float64(row-1) / 2
	for i := range cells {
		cells[i].X = (cells[i].X - cx) * spriteCellSize
		cells[i].Y = (cells[i].Y - cy) * spriteCellSize
	}

	s.cells = cells
	s.Status = SpriteLoaded
	return s
}

// Loaded reports whether the sprite has drawable art. Safe on a nil sprite.
func (s *Sprite) Loaded() bool {
	return s != nil && s.Status == SpriteLoaded
}

// DrawRotated renders the sprite centered at (x, y), rotated by the given
// angle in radians.
func (s *Sprite) DrawRotated(c *draw.Canvas, x, y, rotation float64) {
	if !s.Loaded() {
		return
	}

	sin, cos := math.Sincos(rotation)
	const half = spriteCellSize / 2
	for _, cell := range s.cells {
		px := x + cell.X*cos - cell.Y*sin
		py := y + cell.X*sin + cell.Y*cos
		c.FillRect(px-half, py-half, px+half, py+half)
	}
}
