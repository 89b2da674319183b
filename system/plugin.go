package system

import (
	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
)

// PlayerPlugin spawns the player on entering Game and moves/confines it
type PlayerPlugin struct{}

func (PlayerPlugin) Build(app *engine.App) {
	w := app.World
	app.OnEnter(core.AppStateGame, spawnPlayerAtCenter).
		OnExit(core.AppStateGame, despawnPlayer).
		AddSystem(NewPlayerMovementSystem(w), engine.Gameplay()).
		AddSystem(NewPlayerConfinementSystem(w), engine.Gameplay())
}

// EnemyPlugin owns enemy spawning, movement, confinement, bounce and the player hit check
type EnemyPlugin struct{}

func (EnemyPlugin) Build(app *engine.App) {
	w := app.World
	app.OnEnter(core.AppStateGame, spawnInitialEnemies).
		OnExit(core.AppStateGame, despawnEnemies).
		AddSystem(NewEnemyMovementSystem(w), engine.Gameplay()).
		AddSystem(NewEnemyConfinementSystem(w), engine.Gameplay()).
		AddSystem(NewEnemyBounceSystem(w), engine.Gameplay()).
		AddSystem(NewEnemyHitPlayerSystem(w), engine.Gameplay()).
		AddSystem(NewEnemySpawnSystem(w), engine.Gameplay())
}

// StarPlugin owns star spawning and pickup
type StarPlugin struct{}

func (StarPlugin) Build(app *engine.App) {
	w := app.World
	app.OnEnter(core.AppStateGame, spawnInitialStars).
		OnExit(core.AppStateGame, despawnStars).
		AddSystem(NewPlayerHitStarSystem(w), engine.Gameplay()).
		AddSystem(NewStarSpawnSystem(w), engine.Gameplay())
}

// ScorePlugin owns the run score and the high score table
type ScorePlugin struct{}

func (ScorePlugin) Build(app *engine.App) {
	w := app.World
	app.OnEnter(core.AppStateGame, insertScore).
		OnExit(core.AppStateGame, removeScore).
		AddSystem(NewScoreSystem(w), engine.Gameplay()).
		AddSystem(NewHighScoreSystem(w), engine.Always())
}

// GamePlugin owns app/simulation state shortcuts, game over and exit
type GamePlugin struct{}

func (GamePlugin) Build(app *engine.App) {
	w := app.World
	app.AddSystem(NewExitSystem(w), engine.Always()).
		AddSystem(NewStateTransitionSystem(w), engine.Always()).
		AddSystem(NewSimulationToggleSystem(w), engine.InState(core.AppStateGame)).
		AddSystem(NewGameOverSystem(w), engine.Always())
}

// MenuPlugin owns the main menu
type MenuPlugin struct{}

func (MenuPlugin) Build(app *engine.App) {
	app.OnEnter(core.AppStateMainMenu, buildMenu).
		OnExit(core.AppStateMainMenu, clearMenu).
		AddSystem(NewMenuSystem(app.World), engine.InState(core.AppStateMainMenu))
}

// AudioPlugin routes sound requests to the attached player
type AudioPlugin struct{}

func (AudioPlugin) Build(app *engine.App) {
	app.AddSystem(NewAudioSystem(app.World), engine.Always())
}

// DefaultPlugins is the full game
func DefaultPlugins() []engine.Plugin {
	return []engine.Plugin{
		GamePlugin{},
		MenuPlugin{},
		PlayerPlugin{},
		EnemyPlugin{},
		StarPlugin{},
		ScorePlugin{},
		AudioPlugin{},
		StatsPlugin{},
	}
}
