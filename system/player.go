package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/parameter"
	"github.com/lixenwraith/ball-game/vmath"
)

// PlayerMovementSystem moves the player from held direction keys
type PlayerMovementSystem struct {
	world *engine.World
}

func NewPlayerMovementSystem(world *engine.World) *PlayerMovementSystem {
	return &PlayerMovementSystem{world: world}
}

// Priority returns the system's priority
func (s *PlayerMovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// Update integrates position along the normalized input direction
func (s *PlayerMovementSystem) Update() {
	player, _, ok := s.world.Components.Player.First()
	if !ok {
		return
	}
	transform, ok := s.world.Components.Transform.GetComponent(player)
	if !ok {
		return
	}

	dir := inputDirection(s.world.Resources.Keyboard)
	if dir.IsZero() {
		return
	}

	speed := s.world.Resources.Config.Player.Speed
	dt := s.world.Resources.Time.DeltaSeconds()
	transform.Position = transform.Position.Add(dir.Scale(speed * dt))
	s.world.Components.Transform.SetComponent(player, transform)
}

type keyState interface {
	AnyPressed(keys ...core.Key) bool
}

// inputDirection maps arrows/WASD to a unit vector
// Per axis the later check wins: right over left, down over up
func inputDirection(kb keyState) vmath.Vec2 {
	var x, y float64
	if kb.AnyPressed(core.KeyLeft, core.KeyA) {
		x = -1
	}
	if kb.AnyPressed(core.KeyRight, core.KeyD) {
		x = 1
	}
	if kb.AnyPressed(core.KeyUp, core.KeyW) {
		y = 1
	}
	if kb.AnyPressed(core.KeyDown, core.KeyS) {
		y = -1
	}
	return vmath.V2(x, y).Normalize()
}

// PlayerConfinementSystem keeps the player inside the field
type PlayerConfinementSystem struct {
	world *engine.World
}

func NewPlayerConfinementSystem(world *engine.World) *PlayerConfinementSystem {
	return &PlayerConfinementSystem{world: world}
}

// Priority returns the system's priority
func (s *PlayerConfinementSystem) Priority() int {
	return parameter.PriorityConfinement
}

// Update keeps the player inside the field
func (s *PlayerConfinementSystem) Update() {
	player, _, ok := s.world.Components.Player.First()
	if !ok {
		return
	}
	transform, ok := s.world.Components.Transform.GetComponent(player)
	if !ok {
		return
	}
	size := s.world.Resources.Config.Player.Size
	transform.Position = vmath.Confine(transform.Position, size, s.world.Resources.Window.Size)
	s.world.Components.Transform.SetComponent(player, transform)
}

// spawnPlayerAtCenter is the OnEnter(Game) hook
func spawnPlayerAtCenter(w *engine.World) {
	e := SpawnPlayer(w, w.Resources.Window.Center())
	w.Resources.Logger.Debug("player spawned", zap.Uint64("entity", uint64(e)))
}

// despawnPlayer is the OnExit(Game) hook
func despawnPlayer(w *engine.World) {
	despawnAll(w, w.Components.Player)
}
