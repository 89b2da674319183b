package main

import (
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/ball-game/audio"
	"github.com/lixenwraith/ball-game/config"
	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/highscore"
	"github.com/lixenwraith/ball-game/render"
	"github.com/lixenwraith/ball-game/render/renderers"
	"github.com/lixenwraith/ball-game/system"
	"github.com/lixenwraith/ball-game/terminal"
)

// newGameApp wires resources, plugins and persistence; no terminal or audio device involved
func newGameApp(cfg *config.Config, log *zap.Logger, cols, rows int) *engine.App {
	res := engine.NewResource(cfg)
	res.Logger = log
	res.Window.Resize(cols, rows)

	if cfg.Scores.Path != "" {
		store := highscore.NewStore(cfg.Scores.Path)
		table, err := store.Load()
		if err != nil {
			log.Warn("high scores unreadable, starting empty",
				zap.String("path", store.Path()),
				zap.Error(err))
			table = &highscore.Table{}
		}
		res.HighScores.Table = table
		res.HighScores.Store = store
		log.Info("high scores loaded", zap.Int("entries", table.Len()))
	}

	w := engine.NewWorld(res)
	app := engine.NewApp(w, nil)
	app.AddPlugins(system.DefaultPlugins()...)
	return app
}

// newOrchestrator registers every renderer against the screen
func newOrchestrator(term *terminal.Terminal, w *engine.World, withDebug bool) *render.RenderOrchestrator {
	o := render.NewRenderOrchestrator(term.Screen())
	o.Register(renderers.NewBorderRenderer(w), render.PriorityBorder)
	o.Register(renderers.NewEntitiesRenderer(w), render.PriorityEntities)
	o.Register(renderers.NewHUDRenderer(w), render.PriorityUI)
	o.Register(renderers.NewMenuRenderer(w), render.PriorityUI)
	o.Register(renderers.NewGameOverRenderer(w), render.PriorityOverlay)
	if withDebug {
		o.Register(renderers.NewDebugRenderer(w), render.PriorityOverlay)
	}
	return o
}

// startAudio returns a running engine, or nil when audio is off or the device fails
func startAudio(cfg *config.Config, opts *options, log *zap.Logger) *audio.AudioEngine {
	if opts.noAudio {
		return nil
	}
	ae := audio.NewAudioEngine(cfg.Audio)
	if err := ae.Start(); err != nil {
		log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		return nil
	}
	log.Info("audio started", zap.Bool("muted", ae.IsMuted()))
	return ae
}

// run owns the terminal for the duration of the game
func run(cfg *config.Config, opts *options, log *zap.Logger) (err error) {
	term, err := terminal.New()
	if err != nil {
		return err
	}

	cols, rows := term.Size()
	app := newGameApp(cfg, log, cols, rows)
	w := app.World

	ae := startAudio(cfg, opts, log)
	if ae != nil {
		w.Resources.Audio.Player = ae
		defer ae.Stop()
	}

	// Restore the terminal before anything else on panic, or the error is unreadable
	defer func() {
		if r := recover(); r != nil {
			term.Fini()
			log.Error("panic", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	orch := newOrchestrator(term, w, opts.debug)
	events := term.Events()
	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				shutdown(app, log)
				return nil
			}
			switch terminal.Apply(ev, w.Resources, time.Now()) {
			case terminal.ActionQuit:
				term.Fini()
				shutdown(app, log)
				return nil
			case terminal.ActionResize:
				orch.Resize(w.Resources.Window.Cols, w.Resources.Window.Rows)
			}

		case now := <-ticker.C:
			app.Tick(now.Sub(last))
			last = now

			if app.ExitRequested() {
				term.Fini()
				shutdown(app, log)
				return nil
			}
			orch.RenderFrame(w)
		}
	}
}

// shutdown handles events still queued and saves a high score table that changed
// after the last HighScoreSystem update
func shutdown(app *engine.App, log *zap.Logger) {
	app.Flush()

	hs := app.World.Resources.HighScores
	if hs.Changed() && hs.Store != nil {
		if err := hs.Store.Save(hs.Table); err != nil {
			log.Error("failed to save high scores on exit", zap.Error(err))
		}
		hs.ClearChanged()
	}
	fields := []zap.Field{zap.Int64("frames", app.World.FrameNumber())}
	for _, m := range app.World.Resources.Status.Snapshot() {
		fields = append(fields, zap.String(m.Key, m.Value))
	}
	log.Info("exit", fields...)
}
