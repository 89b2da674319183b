package render

import (
	"time"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	State    core.AppState
	IsPaused bool
	GameTime time.Duration
	Frame    int64
	Muted    bool
	AudioOn  bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

// NewRenderContext snapshots the world state needed for one frame
func NewRenderContext(w *engine.World) RenderContext {
	res := w.Resources
	ctx := RenderContext{
		State:        res.State.App(),
		IsPaused:     res.State.InGame() && !res.State.Running(),
		GameTime:     res.Time.GameTime,
		Frame:        res.Time.FrameNumber,
		ScreenWidth:  res.Window.Cols,
		ScreenHeight: res.Window.Rows,
	}
	if p := res.Audio.Player; p != nil {
		ctx.AudioOn = p.IsRunning()
		ctx.Muted = p.IsMuted()
	}
	return ctx
}
