package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/parameter"
	"github.com/lixenwraith/ball-game/status"
	"github.com/lixenwraith/ball-game/vmath"
)

// EnemyMovementSystem moves every enemy along its direction
type EnemyMovementSystem struct {
	world *engine.World
}

func NewEnemyMovementSystem(world *engine.World) *EnemyMovementSystem {
	return &EnemyMovementSystem{world: world}
}

// Priority returns the system's priority
func (s *EnemyMovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// Update advances enemies along their directions
func (s *EnemyMovementSystem) Update() {
	speed := s.world.Resources.Config.Enemy.Speed
	dt := s.world.Resources.Time.DeltaSeconds()

	for _, e := range s.world.Components.Enemy.GetAllEntities() {
		enemy, ok := s.world.Components.Enemy.GetComponent(e)
		if !ok {
			continue
		}
		transform, ok := s.world.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}
		transform.Position = transform.Position.Add(enemy.Direction.Scale(speed * dt))
		s.world.Components.Transform.SetComponent(e, transform)
	}
}

// EnemyConfinementSystem keeps enemies inside the field
type EnemyConfinementSystem struct {
	world *engine.World
}

func NewEnemyConfinementSystem(world *engine.World) *EnemyConfinementSystem {
	return &EnemyConfinementSystem{world: world}
}

// Priority returns the system's priority
func (s *EnemyConfinementSystem) Priority() int {
	return parameter.PriorityConfinement
}

// Update keeps every enemy inside the field
func (s *EnemyConfinementSystem) Update() {
	size := s.world.Resources.Config.Enemy.Size
	bounds := s.world.Resources.Window.Size

	for _, e := range s.world.Components.Enemy.GetAllEntities() {
		transform, ok := s.world.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}
		transform.Position = vmath.Confine(transform.Position, size, bounds)
		s.world.Components.Transform.SetComponent(e, transform)
	}
}

// EnemyBounceSystem reflects enemy direction per axis at the field edge
// At most one bump sound is requested per tick regardless of how many enemies bounced
type EnemyBounceSystem struct {
	world *engine.World
}

func NewEnemyBounceSystem(world *engine.World) *EnemyBounceSystem {
	return &EnemyBounceSystem{world: world}
}

// Priority returns the system's priority (after confinement, before collision)
func (s *EnemyBounceSystem) Priority() int {
	return parameter.PriorityBounce
}

// Update reflects enemies off the field edges
func (s *EnemyBounceSystem) Update() {
	size := s.world.Resources.Config.Enemy.Size
	bounds := s.world.Resources.Window.Size
	bounced := false

	for _, e := range s.world.Components.Enemy.GetAllEntities() {
		enemy, ok := s.world.Components.Enemy.GetComponent(e)
		if !ok {
			continue
		}
		transform, ok := s.world.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}

		atX, atY := vmath.AtEdge(transform.Position, size, bounds)
		if atX {
			enemy.Direction.X = -enemy.Direction.X
		}
		if atY {
			enemy.Direction.Y = -enemy.Direction.Y
		}
		if atX || atY {
			s.world.Components.Enemy.SetComponent(e, enemy)
			s.world.Resources.Status.Int(status.KeyBounces).Add(1)
			bounced = true
		}
	}

	if bounced {
		s.world.PlaySound(s.bumpSound(), parameter.BumpVolume)
	}
}

// bumpSound picks one of the two pluck variants with equal probability
func (s *EnemyBounceSystem) bumpSound() core.SoundType {
	if s.world.Resources.Rand.Float64() > 0.5 {
		return core.SoundBumpLow
	}
	return core.SoundBumpHigh
}

// EnemySpawnSystem adds one enemy each time the enemy spawn timer wraps
type EnemySpawnSystem struct {
	world *engine.World
}

func NewEnemySpawnSystem(world *engine.World) *EnemySpawnSystem {
	return &EnemySpawnSystem{world: world}
}

// Priority returns the system's priority
func (s *EnemySpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Update ticks the enemy timer and spawns one enemy per period
func (s *EnemySpawnSystem) Update() {
	timer := s.world.Resources.EnemySpawnTimer
	timer.Tick(s.world.Resources.Time.Delta)
	if !timer.Finished() {
		return
	}
	e := spawnRandomEnemy(s.world)
	s.world.Resources.Logger.Debug("enemy spawned",
		zap.Uint64("entity", uint64(e)),
		zap.Int("enemies", s.world.Components.Enemy.CountEntities()))
}

// spawnInitialEnemies is the OnEnter(Game) hook
func spawnInitialEnemies(w *engine.World) {
	for i := 0; i < w.Resources.Config.Enemy.Count; i++ {
		spawnRandomEnemy(w)
	}
	w.Resources.EnemySpawnTimer.Reset()
}

// despawnEnemies is the OnExit(Game) hook
func despawnEnemies(w *engine.World) {
	despawnAll(w, w.Components.Enemy)
}
