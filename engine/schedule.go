package engine

import (
	"sort"

	"go.uber.org/zap"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/event"
)

type scheduledSystem struct {
	system System
	cond   Condition
	order  int // registration order, breaks priority ties
}

// Schedule runs systems in priority order and applies state transitions
type Schedule struct {
	systems []scheduledSystem
	sorted  bool

	startup    []Hook
	startupRan bool
	onEnter    map[core.AppState][]Hook
	onExit     map[core.AppState][]Hook
}

func NewSchedule() *Schedule {
	return &Schedule{
		onEnter: make(map[core.AppState][]Hook),
		onExit:  make(map[core.AppState][]Hook),
	}
}

// Add registers a system under a run condition (nil = Always)
func (s *Schedule) Add(sys System, cond Condition) {
	if cond == nil {
		cond = Always()
	}
	s.systems = append(s.systems, scheduledSystem{system: sys, cond: cond, order: len(s.systems)})
	s.sorted = false
}

// AddStartup registers a hook that runs once before the first transition
func (s *Schedule) AddStartup(h Hook) {
	s.startup = append(s.startup, h)
}

// OnEnter registers a hook for entering state
func (s *Schedule) OnEnter(state core.AppState, h Hook) {
	s.onEnter[state] = append(s.onEnter[state], h)
}

// OnExit registers a hook for leaving state
func (s *Schedule) OnExit(state core.AppState, h Hook) {
	s.onExit[state] = append(s.onExit[state], h)
}

// Startup runs startup hooks and OnEnter of the initial state, once
func (s *Schedule) Startup(w *World) {
	if s.startupRan {
		return
	}
	s.startupRan = true
	for _, h := range s.startup {
		h(w)
	}
	for _, h := range s.onEnter[w.Resources.State.App()] {
		h(w)
	}
}

// ApplyTransitions applies queued app and simulation state changes
// App transition: OnExit(old), state swap, OnEnter(new)
// Entering Game resumes the simulation; leaving it pauses
func (s *Schedule) ApplyTransitions(w *World) {
	st := w.Resources.State
	log := w.Resources.Logger

	if next, ok := st.takeNextApp(); ok && next != st.app {
		from := st.app
		for _, h := range s.onExit[from] {
			h(w)
		}
		st.app = next
		if next == core.AppStateGame {
			st.sim = core.SimulationRunning
		} else {
			st.sim = core.SimulationPaused
		}
		// A stale simulation request from the old state must not leak into the new one
		st.hasNextSim = false
		for _, h := range s.onEnter[next] {
			h(w)
		}
		log.Debug("state transition", zap.Stringer("from", from), zap.Stringer("to", next))
		w.PushEvent(event.EventStateTransition, &event.StateTransitionPayload{From: from, To: next})
	}

	if next, ok := st.takeNextSim(); ok && next != st.sim {
		if st.app != core.AppStateGame {
			return
		}
		st.sim = next
		w.PushEvent(event.EventSimulationToggled, &event.SimulationPayload{State: next})
	}
}

// Run updates every system whose condition holds, in priority order
func (s *Schedule) Run(w *World) {
	s.ensureSorted()
	for _, ss := range s.systems {
		if ss.cond(w) {
			ss.system.Update()
		}
	}
}

func (s *Schedule) ensureSorted() {
	if s.sorted {
		return
	}
	sort.SliceStable(s.systems, func(i, j int) bool {
		pi, pj := s.systems[i].system.Priority(), s.systems[j].system.Priority()
		if pi != pj {
			return pi < pj
		}
		return s.systems[i].order < s.systems[j].order
	})
	s.sorted = true
}
