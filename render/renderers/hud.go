package renderers

import (
	"fmt"
	"time"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/parameter"
	"github.com/lixenwraith/ball-game/render"
)

const gameHints = "[Space] pause  [M] menu  [N] sound  [Esc] quit"

// HUDRenderer draws the in-game status line, pause banner and key hints
type HUDRenderer struct {
	world *engine.World
}

func NewHUDRenderer(world *engine.World) *HUDRenderer {
	return &HUDRenderer{world: world}
}

func (r *HUDRenderer) IsVisible() bool {
	return r.world.Resources.State.App() == core.AppStateGame
}

func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	res := r.world.Resources

	status := fmt.Sprintf(" Score: %d  Best: %d  Enemies: %d  Time: %s ",
		res.Score.Value,
		res.HighScores.Table.Best(),
		r.world.Components.Enemy.CountEntities(),
		formatSeconds(ctx.GameTime))
	buf.DrawText(2, 0, status, parameter.HUDColor)

	if ctx.AudioOn {
		sound := " sound on "
		if ctx.Muted {
			sound = " sound off "
		}
		buf.DrawText(buf.Width()-len(sound)-2, 0, sound, parameter.HUDColor)
	}

	if buf.Height() > 2 {
		buf.DrawText(2, buf.Height()-1, " "+gameHints+" ", render.RgbDim)
	}

	if ctx.IsPaused {
		// Pulse between the banner color and the background, one cycle per second
		phase := float64(ctx.Frame%60) / 60
		if phase > 0.5 {
			phase = 1 - phase
		}
		color := render.Blend(parameter.PausedColor, render.RgbBackground, phase)
		mid := buf.Height() / 2
		buf.DrawTextCentered(mid, "PAUSED", color)
		buf.DrawTextCentered(mid+1, "[Space] resume", render.RgbDim)
	}
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
