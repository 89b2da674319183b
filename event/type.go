package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value, never emitted
	EventNone EventType = iota

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventPlayerHit signals the player touched an enemy
	// Trigger: EnemyHitPlayerSystem
	// Consumer: none | Payload: *EntityPayload (the enemy)
	EventPlayerHit

	// EventGameOver ends the current run with the final score
	// Trigger: EnemyHitPlayerSystem
	// Consumer: GameOverSystem, HighScoreSystem | Payload: *GameOverPayload
	EventGameOver

	// EventStarCollected signals a star was picked up
	// Trigger: PlayerHitStarSystem
	// Consumer: none, score is updated directly | Payload: *EntityPayload
	EventStarCollected

	// EventScoreChanged reports the new score after a change
	// Trigger: ScoreSystem
	// Consumer: none, HUD reads the resource | Payload: *ScorePayload
	EventScoreChanged

	// EventHighScoresUpdated reports the high score table changed
	// Trigger: HighScoreSystem
	// Consumer: none | Payload: nil
	EventHighScoresUpdated

	// EventStateTransition reports an applied AppState transition
	// Trigger: Schedule on transition
	// Consumer: MenuSystem (logging) | Payload: *StateTransitionPayload
	EventStateTransition

	// EventSimulationToggled reports a pause/resume
	// Trigger: Schedule on simulation change
	// Consumer: SimulationToggleSystem (logging) | Payload: *SimulationPayload
	EventSimulationToggled

	// EventExitRequest asks the application loop to stop
	// Trigger: ExitSystem, menu Quit button
	// Consumer: App | Payload: nil
	EventExitRequest

	eventTypeCount
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
