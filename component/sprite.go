package component

import "github.com/lixenwraith/ball-game/parameter"

// SpriteShape selects how the renderer rasterizes an entity
type SpriteShape uint8

const (
	SpriteShapeDisc  SpriteShape = iota // Filled circle of Glyph cells
	SpriteShapeGlyph                    // Single Glyph at the center cell
)

// SpriteComponent is render-only data: what to draw and at which diameter
type SpriteComponent struct {
	Shape SpriteShape
	Glyph rune
	Color parameter.RGB
	Size  float64 // Diameter in world units
}
