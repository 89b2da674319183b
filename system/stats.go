package system

import (
	"sync/atomic"

	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/parameter"
	"github.com/lixenwraith/ball-game/status"
)

// fpsSmoothing is the moving-average weight of the newest frame
const fpsSmoothing = 0.1

// StatsSystem publishes per-frame gauges to the status registry
// Counters are bumped by the systems that own them
type StatsSystem struct {
	world *engine.World

	fps     *status.AtomicFloat
	enemies *atomic.Int64
	stars   *atomic.Int64
	dropped *atomic.Int64
}

func NewStatsSystem(world *engine.World) *StatsSystem {
	reg := world.Resources.Status
	return &StatsSystem{
		world:   world,
		fps:     reg.Float(status.KeyFPS),
		enemies: reg.Int(status.KeyEnemies),
		stars:   reg.Int(status.KeyStars),
		dropped: reg.Int(status.KeyEventsDropped),
	}
}

// Priority returns the system's priority (last, after every writer)
func (s *StatsSystem) Priority() int {
	return parameter.PriorityStats
}

// Update publishes FPS, entity counts and queue drops
func (s *StatsSystem) Update() {
	if dt := s.world.Resources.Time.Delta.Seconds(); dt > 0 {
		s.fps.Smooth(1/dt, fpsSmoothing)
	}
	s.enemies.Store(int64(s.world.Components.Enemy.CountEntities()))
	s.stars.Store(int64(s.world.Components.Star.CountEntities()))
	s.dropped.Store(int64(s.world.Events().Dropped()))
}

// StatsPlugin keeps the status registry gauges current
type StatsPlugin struct{}

func (StatsPlugin) Build(app *engine.App) {
	app.AddSystem(NewStatsSystem(app.World), engine.Always())
}
