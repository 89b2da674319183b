package core

// AppState is the top-level screen the application is in
type AppState int

const (
	AppStateMainMenu AppState = iota
	AppStateGame
	AppStateGameOver
)

func (s AppState) String() string {
	switch s {
	case AppStateMainMenu:
		return "MainMenu"
	case AppStateGame:
		return "Game"
	case AppStateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// SimulationState gates gameplay systems while in AppStateGame
type SimulationState int

const (
	SimulationPaused SimulationState = iota
	SimulationRunning
)

func (s SimulationState) String() string {
	if s == SimulationRunning {
		return "Running"
	}
	return "Paused"
}
