package engine

import "github.com/lixenwraith/ball-game/core"

// StateResource holds the app and simulation state machines
// Transitions are queued with SetNext* and applied by the Schedule at the start of the next tick
type StateResource struct {
	app core.AppState
	sim core.SimulationState

	nextApp    core.AppState
	hasNextApp bool
	nextSim    core.SimulationState
	hasNextSim bool
}

func NewStateResource() *StateResource {
	return &StateResource{
		app: core.AppStateMainMenu,
		sim: core.SimulationPaused,
	}
}

// App returns the current app state
func (s *StateResource) App() core.AppState { return s.app }

// Simulation returns the current simulation state
func (s *StateResource) Simulation() core.SimulationState { return s.sim }

// InGame reports AppStateGame
func (s *StateResource) InGame() bool { return s.app == core.AppStateGame }

// Running reports the simulation is advancing
func (s *StateResource) Running() bool { return s.sim == core.SimulationRunning }

// SetNext queues an app state transition
func (s *StateResource) SetNext(state core.AppState) {
	s.nextApp = state
	s.hasNextApp = true
}

// SetNextSimulation queues a simulation state change
func (s *StateResource) SetNextSimulation(state core.SimulationState) {
	s.nextSim = state
	s.hasNextSim = true
}

func (s *StateResource) takeNextApp() (core.AppState, bool) {
	if !s.hasNextApp {
		return s.app, false
	}
	s.hasNextApp = false
	return s.nextApp, true
}

func (s *StateResource) takeNextSim() (core.SimulationState, bool) {
	if !s.hasNextSim {
		return s.sim, false
	}
	s.hasNextSim = false
	return s.nextSim, true
}
