package renderers

import (
	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/parameter"
	"github.com/lixenwraith/ball-game/render"
)

// BorderRenderer frames the play field
type BorderRenderer struct {
	world *engine.World
}

func NewBorderRenderer(world *engine.World) *BorderRenderer {
	return &BorderRenderer{world: world}
}

func (r *BorderRenderer) IsVisible() bool {
	return r.world.Resources.State.App() == core.AppStateGame
}

func (r *BorderRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w, h := buf.Width(), buf.Height()
	if w < 2 || h < 2 {
		return
	}
	fg := parameter.BorderColor

	for x := 1; x < w-1; x++ {
		buf.SetFg(x, 0, '─', fg)
		buf.SetFg(x, h-1, '─', fg)
	}
	for y := 1; y < h-1; y++ {
		buf.SetFg(0, y, '│', fg)
		buf.SetFg(w-1, y, '│', fg)
	}
	buf.SetFg(0, 0, '┌', fg)
	buf.SetFg(w-1, 0, '┐', fg)
	buf.SetFg(0, h-1, '└', fg)
	buf.SetFg(w-1, h-1, '┘', fg)
}
