package engine

import (
	"time"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/event"
	"github.com/lixenwraith/ball-game/parameter"
)

// Plugin groups the systems and hooks of one gameplay feature
type Plugin interface {
	Build(app *App)
}

// App ties the world to its schedule, event router and run clock
// Tick drives one frame; the caller owns the loop
type App struct {
	World *World

	schedule *Schedule
	router   *EventRouter
	clock    *PausableClock
	tp       TimeProvider

	exitRequested bool
}

// NewApp creates an app around w; tp nil uses the monotonic clock
func NewApp(w *World, tp TimeProvider) *App {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	a := &App{
		World:    w,
		schedule: NewSchedule(),
		router:   NewEventRouter(w.Events()),
		clock:    NewPausableClock(tp),
		tp:       tp,
	}
	a.router.Register(a)
	a.schedule.OnEnter(core.AppStateGame, func(*World) { a.clock.Reset() })
	return a
}

// AddPlugins builds each plugin in order
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		p.Build(a)
	}
	return a
}

// AddSystem schedules sys under cond; systems that handle events are routed too
func (a *App) AddSystem(sys System, cond Condition) *App {
	a.schedule.Add(sys, cond)
	if h, ok := sys.(EventHandler); ok {
		a.router.Register(h)
	}
	return a
}

// AddEventHandler registers a handler that is not a scheduled system
func (a *App) AddEventHandler(h EventHandler) *App {
	a.router.Register(h)
	return a
}

// AddStartup registers a hook run once on the first tick
func (a *App) AddStartup(h Hook) *App {
	a.schedule.AddStartup(h)
	return a
}

// OnEnter registers a hook for entering state
func (a *App) OnEnter(state core.AppState, h Hook) *App {
	a.schedule.OnEnter(state, h)
	return a
}

// OnExit registers a hook for leaving state
func (a *App) OnExit(state core.AppState, h Hook) *App {
	a.schedule.OnExit(state, h)
	return a
}

// Router exposes the event router for inspection
func (a *App) Router() *EventRouter {
	return a.router
}

// Tick advances one frame:
// startup (first tick), event dispatch, state transitions, systems, input edge reset
func (a *App) Tick(dt time.Duration) {
	w := a.World
	res := w.Resources

	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	now := a.tp.Now()
	res.Time.Delta = dt
	res.Time.RealTime = now
	res.Time.FrameNumber = w.nextFrame()
	res.Keyboard.BeginFrame(now)

	a.schedule.Startup(w)
	a.router.DispatchAll()
	a.schedule.ApplyTransitions(w)

	if res.State.InGame() && res.State.Running() {
		a.clock.Resume()
	} else {
		a.clock.Pause()
	}
	res.Time.GameTime = a.clock.Elapsed()
	res.Time.PausedTime = a.clock.TotalPauseDuration()

	a.schedule.Run(w)

	res.Keyboard.EndFrame()
	res.Mouse.EndFrame()
}

// Flush dispatches pending events without running systems
// Used on shutdown so final events (game over, high scores) are handled
func (a *App) Flush() {
	a.router.DispatchAll()
}

// ExitRequested reports whether an ExitRequest event was handled
func (a *App) ExitRequested() bool {
	return a.exitRequested
}

// EventTypes implements EventHandler
func (a *App) EventTypes() []event.EventType {
	return []event.EventType{event.EventExitRequest}
}

// HandleEvent implements EventHandler
func (a *App) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventExitRequest {
		a.exitRequested = true
	}
}
