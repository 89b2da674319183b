package engine

import (
	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/event"
)

// System is a per-tick update step
type System interface {
	Update()
	Priority() int // Lower values run first
}

// EventHandler processes specific event types
// Systems implementing it are auto-registered with the router
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, before systems update
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}

// Condition gates a system for the current tick
type Condition func(w *World) bool

// Hook runs on startup or on a state transition
type Hook func(w *World)

// Always runs every tick
func Always() Condition {
	return func(*World) bool { return true }
}

// InState runs only while the app is in the given state
func InState(state core.AppState) Condition {
	return func(w *World) bool { return w.Resources.State.App() == state }
}

// SimulationRunning runs only while the simulation is unpaused
func SimulationRunning() Condition {
	return func(w *World) bool { return w.Resources.State.Running() }
}

// All combines conditions with logical AND
func All(conds ...Condition) Condition {
	return func(w *World) bool {
		for _, c := range conds {
			if !c(w) {
				return false
			}
		}
		return true
	}
}

// Gameplay is the usual condition for simulation systems
func Gameplay() Condition {
	return All(InState(core.AppStateGame), SimulationRunning())
}
