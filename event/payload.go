package event

import (
	"github.com/lixenwraith/ball-game/core"
)

// SoundRequestPayload carries the sound to play and its linear volume
type SoundRequestPayload struct {
	Sound  core.SoundType
	Volume float64
}

// EntityPayload references the entity an event is about
type EntityPayload struct {
	Entity core.Entity
}

// GameOverPayload carries the final score of a run
type GameOverPayload struct {
	Score int
}

// ScorePayload carries the current score
type ScorePayload struct {
	Score int
}

// StateTransitionPayload describes an applied AppState transition
type StateTransitionPayload struct {
	From core.AppState
	To   core.AppState
}

// SimulationPayload carries the new simulation state
type SimulationPayload struct {
	State core.SimulationState
}
