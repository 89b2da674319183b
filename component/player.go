package component

// PlayerComponent tags the single player-controlled entity
type PlayerComponent struct{}
