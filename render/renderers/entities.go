package renderers

import (
	"github.com/lixenwraith/ball-game/component"
	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/render"
	"github.com/lixenwraith/ball-game/vmath"
)

// EntitiesRenderer draws every sprite: discs as filled cell ellipses, glyphs as one cell
// Stars draw first so balls cover them
type EntitiesRenderer struct {
	world *engine.World
}

func NewEntitiesRenderer(world *engine.World) *EntitiesRenderer {
	return &EntitiesRenderer{world: world}
}

func (r *EntitiesRenderer) IsVisible() bool {
	return r.world.Resources.State.App() == core.AppStateGame
}

func (r *EntitiesRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	var discs []core.Entity
	for _, e := range r.world.Components.Sprite.GetAllEntities() {
		sprite, ok := r.world.Components.Sprite.GetComponent(e)
		if !ok {
			continue
		}
		tr, ok := r.world.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}
		if sprite.Shape == component.SpriteShapeDisc {
			discs = append(discs, e)
			continue
		}
		col, row := r.world.Resources.Window.ToCell(tr.Position)
		buf.SetFg(col, row, sprite.Glyph, sprite.Color)
	}

	for _, e := range discs {
		sprite, _ := r.world.Components.Sprite.GetComponent(e)
		tr, _ := r.world.Components.Transform.GetComponent(e)
		r.drawDisc(buf, tr.Position, sprite)
	}
}

// drawDisc fills every cell whose center lies inside the sprite circle
// The cell under the center is always filled so small discs stay visible
func (r *EntitiesRenderer) drawDisc(buf *render.RenderBuffer, center vmath.Vec2, sprite component.SpriteComponent) {
	win := r.world.Resources.Window
	radius := sprite.Size / 2

	minCol, maxRow := win.ToCell(center.Sub(vmath.V2(radius, radius)))
	maxCol, minRow := win.ToCell(center.Add(vmath.V2(radius, radius)))

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cellCenter := vmath.V2(
				(float64(col)+0.5)*win.CellWidth,
				(float64(win.Rows-1-row)+0.5)*win.CellHeight,
			)
			if vmath.Distance(cellCenter, center) <= radius {
				buf.SetFg(col, row, sprite.Glyph, sprite.Color)
			}
		}
	}

	col, row := win.ToCell(center)
	buf.SetFg(col, row, sprite.Glyph, sprite.Color)
}
