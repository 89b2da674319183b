package renderers

import (
	"fmt"

	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/render"
)

// DebugRenderer lists the status registry in the top-right corner
// Registered only when the game runs with --debug
type DebugRenderer struct {
	world *engine.World
}

func NewDebugRenderer(world *engine.World) *DebugRenderer {
	return &DebugRenderer{world: world}
}

func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	metrics := r.world.Resources.Status.Snapshot()
	lines := make([]string, len(metrics))
	width := 0
	for i, m := range metrics {
		lines[i] = fmt.Sprintf(" %-18s %8s ", m.Key, m.Value)
		width = max(width, len(lines[i]))
	}

	x := buf.Width() - width - 1
	if x < 0 {
		x = 0
	}
	// Row 0 is the HUD status line
	for i, line := range lines {
		y := i + 1
		if y >= buf.Height()-1 {
			break
		}
		buf.DrawText(x, y, line, render.RgbDim)
	}
}
