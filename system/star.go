package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/parameter"
)

// StarSpawnSystem adds one star each time the star spawn timer wraps
type StarSpawnSystem struct {
	world *engine.World
}

func NewStarSpawnSystem(world *engine.World) *StarSpawnSystem {
	return &StarSpawnSystem{world: world}
}

// Priority returns the system's priority
func (s *StarSpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Update ticks the star timer and spawns one star per period
func (s *StarSpawnSystem) Update() {
	timer := s.world.Resources.StarSpawnTimer
	timer.Tick(s.world.Resources.Time.Delta)
	if !timer.Finished() {
		return
	}
	e := spawnRandomStar(s.world)
	s.world.Resources.Logger.Debug("star spawned", zap.Uint64("entity", uint64(e)))
}

// spawnInitialStars is the OnEnter(Game) hook
func spawnInitialStars(w *engine.World) {
	for i := 0; i < w.Resources.Config.Star.Count; i++ {
		spawnRandomStar(w)
	}
	w.Resources.StarSpawnTimer.Reset()
}

// despawnStars is the OnExit(Game) hook
func despawnStars(w *engine.World) {
	despawnAll(w, w.Components.Star)
}
