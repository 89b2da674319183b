package renderers

import (
	"fmt"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/parameter"
	"github.com/lixenwraith/ball-game/render"
)

const gameOverHints = "[R] restart  [M] menu  [Esc] quit"

// GameOverRenderer shows the final score and the high score table
type GameOverRenderer struct {
	world *engine.World
}

func NewGameOverRenderer(world *engine.World) *GameOverRenderer {
	return &GameOverRenderer{world: world}
}

func (r *GameOverRenderer) IsVisible() bool {
	return r.world.Resources.State.App() == core.AppStateGameOver
}

func (r *GameOverRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	res := r.world.Resources
	top := res.HighScores.Table.Top(parameter.HighScoresShown)

	lines := 6 + len(top)
	y := (buf.Height() - lines) / 2
	if y < 0 {
		y = 0
	}

	buf.DrawTextCentered(y, "GAME OVER", parameter.EnemyColor)
	y += 2
	if res.LastRun.Valid {
		line := fmt.Sprintf("Final score: %d   Time: %s",
			res.LastRun.FinalScore, formatSeconds(res.LastRun.Duration))
		if res.LastRun.PausedFor > 0 {
			line += fmt.Sprintf("   Paused: %s", formatSeconds(res.LastRun.PausedFor))
		}
		buf.DrawTextCentered(y, line, parameter.HUDColor)
	}
	y += 2

	buf.DrawTextCentered(y, "High Scores", parameter.StarColor)
	y++
	for i, e := range top {
		buf.DrawTextCentered(y, fmt.Sprintf("%d. %-16s %5d", i+1, e.Name, e.Score), parameter.HUDColor)
		y++
	}
	y++
	buf.DrawTextCentered(y, gameOverHints, render.RgbDim)
}
