package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/event"
	"github.com/lixenwraith/ball-game/parameter"
	"github.com/lixenwraith/ball-game/status"
)

// GameOverSystem moves the app to GameOver when a run ends
type GameOverSystem struct {
	world *engine.World
}

func NewGameOverSystem(world *engine.World) *GameOverSystem {
	return &GameOverSystem{world: world}
}

// Priority returns the system's priority
func (s *GameOverSystem) Priority() int {
	return parameter.PriorityState
}

// Update is a no-op; GameOverSystem is event-driven
func (s *GameOverSystem) Update() {}

// EventTypes returns the event types GameOverSystem handles
func (s *GameOverSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameOver}
}

// HandleEvent records the finished run and moves to GameOver
func (s *GameOverSystem) HandleEvent(ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.GameOverPayload)
	if !ok {
		return
	}
	res := s.world.Resources

	res.LastRun.FinalScore = payload.Score
	res.LastRun.Duration = res.Time.GameTime
	res.LastRun.PausedFor = res.Time.PausedTime
	res.LastRun.Valid = true
	res.Status.Int(status.KeyRuns).Add(1)

	res.Logger.Info("game over",
		zap.Int("final_score", payload.Score),
		zap.Duration("duration", res.Time.GameTime),
		zap.Int64("frame", ev.Frame))

	if res.State.InGame() {
		res.State.SetNext(core.AppStateGameOver)
	}
}

// SimulationToggleSystem pauses and resumes the run on Space
type SimulationToggleSystem struct {
	world *engine.World
}

func NewSimulationToggleSystem(world *engine.World) *SimulationToggleSystem {
	return &SimulationToggleSystem{world: world}
}

// Priority returns the system's priority
func (s *SimulationToggleSystem) Priority() int {
	return parameter.PriorityInput
}

// Update flips Running and Paused on Space
func (s *SimulationToggleSystem) Update() {
	if !s.world.Resources.Keyboard.JustPressed(core.KeySpace) {
		return
	}
	state := s.world.Resources.State
	if state.Running() {
		state.SetNextSimulation(core.SimulationPaused)
	} else {
		state.SetNextSimulation(core.SimulationRunning)
	}
}

// EventTypes returns the event types SimulationToggleSystem handles
func (s *SimulationToggleSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSimulationToggled}
}

// HandleEvent logs the applied simulation state
func (s *SimulationToggleSystem) HandleEvent(ev event.GameEvent) {
	if payload, ok := ev.Payload.(*event.SimulationPayload); ok {
		s.world.Resources.Logger.Info("simulation toggled", zap.Stringer("state", payload.State))
	}
}

// StateTransitionSystem handles the keyboard shortcuts between app states
//
//	G: MainMenu/GameOver -> Game
//	R: GameOver -> Game
//	M: Game/GameOver -> MainMenu
type StateTransitionSystem struct {
	world *engine.World
}

func NewStateTransitionSystem(world *engine.World) *StateTransitionSystem {
	return &StateTransitionSystem{world: world}
}

// Priority returns the system's priority
func (s *StateTransitionSystem) Priority() int {
	return parameter.PriorityState
}

// Update applies the G, M and R shortcuts for the current state
func (s *StateTransitionSystem) Update() {
	kb := s.world.Resources.Keyboard
	state := s.world.Resources.State

	switch state.App() {
	case core.AppStateMainMenu:
		if kb.JustPressed(core.KeyG) {
			state.SetNext(core.AppStateGame)
		}
	case core.AppStateGame:
		if kb.JustPressed(core.KeyM) {
			state.SetNext(core.AppStateMainMenu)
		}
	case core.AppStateGameOver:
		switch {
		case kb.JustPressed(core.KeyG), kb.JustPressed(core.KeyR):
			state.SetNext(core.AppStateGame)
		case kb.JustPressed(core.KeyM):
			state.SetNext(core.AppStateMainMenu)
		}
	}
}

// ExitSystem requests shutdown on Escape or Q
type ExitSystem struct {
	world *engine.World
}

func NewExitSystem(world *engine.World) *ExitSystem {
	return &ExitSystem{world: world}
}

// Priority returns the system's priority
func (s *ExitSystem) Priority() int {
	return parameter.PriorityInput
}

// Update requests exit on Escape or Q
func (s *ExitSystem) Update() {
	kb := s.world.Resources.Keyboard
	if kb.JustPressed(core.KeyEscape) || kb.JustPressed(core.KeyQ) {
		s.world.Resources.Logger.Info("exit requested")
		s.world.PushEvent(event.EventExitRequest, nil)
	}
}
