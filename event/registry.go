package event

var typeToName = map[EventType]string{
	EventNone:              "None",
	EventSoundRequest:      "SoundRequest",
	EventPlayerHit:         "PlayerHit",
	EventGameOver:          "GameOver",
	EventStarCollected:     "StarCollected",
	EventScoreChanged:      "ScoreChanged",
	EventHighScoresUpdated: "HighScoresUpdated",
	EventStateTransition:   "StateTransition",
	EventSimulationToggled: "SimulationToggled",
	EventExitRequest:       "ExitRequest",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeToName))
	for t, n := range typeToName {
		m[n] = t
	}
	return m
}()

// String returns the registered name of the event type
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Unknown"
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// AllTypes returns every defined event type except EventNone
func AllTypes() []EventType {
	types := make([]EventType, 0, int(eventTypeCount)-1)
	for t := EventNone + 1; t < eventTypeCount; t++ {
		types = append(types, t)
	}
	return types
}
