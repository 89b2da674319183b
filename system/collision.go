package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/event"
	"github.com/lixenwraith/ball-game/parameter"
	"github.com/lixenwraith/ball-game/status"
	"github.com/lixenwraith/ball-game/vmath"
)

// EnemyHitPlayerSystem ends the run when any enemy overlaps the player
// Only the first overlapping enemy is handled; the player is gone after it
type EnemyHitPlayerSystem struct {
	world *engine.World
}

func NewEnemyHitPlayerSystem(world *engine.World) *EnemyHitPlayerSystem {
	return &EnemyHitPlayerSystem{world: world}
}

// Priority returns the system's priority
func (s *EnemyHitPlayerSystem) Priority() int {
	return parameter.PriorityCollision
}

// Update ends the run on the first enemy overlapping the player
func (s *EnemyHitPlayerSystem) Update() {
	player, _, ok := s.world.Components.Player.First()
	if !ok {
		return
	}
	playerPos, ok := s.world.Components.Transform.GetComponent(player)
	if !ok {
		return
	}

	cfg := s.world.Resources.Config
	for _, e := range s.world.Components.Enemy.GetAllEntities() {
		enemyPos, ok := s.world.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}
		if !vmath.CirclesOverlap(playerPos.Position, enemyPos.Position, cfg.Player.Size, cfg.Enemy.Size) {
			continue
		}

		score := s.world.Resources.Score.Value
		s.world.DestroyEntity(player)
		s.world.Resources.Logger.Info("player hit",
			zap.Uint64("enemy", uint64(e)),
			zap.Int("score", score))

		s.world.PlaySound(core.SoundExplosion, parameter.ExplosionVolume)
		s.world.PushEvent(event.EventPlayerHit, &event.EntityPayload{Entity: e})
		s.world.PushEvent(event.EventGameOver, &event.GameOverPayload{Score: score})
		return
	}
}

// PlayerHitStarSystem collects every star the player overlaps this tick
type PlayerHitStarSystem struct {
	world *engine.World
}

func NewPlayerHitStarSystem(world *engine.World) *PlayerHitStarSystem {
	return &PlayerHitStarSystem{world: world}
}

// Priority returns the system's priority (after EnemyHitPlayerSystem by registration)
func (s *PlayerHitStarSystem) Priority() int {
	return parameter.PriorityCollision
}

// Update collects every star the player overlaps
func (s *PlayerHitStarSystem) Update() {
	player, _, ok := s.world.Components.Player.First()
	if !ok {
		return
	}
	playerPos, ok := s.world.Components.Transform.GetComponent(player)
	if !ok {
		return
	}

	cfg := s.world.Resources.Config
	for _, e := range s.world.Components.Star.GetAllEntities() {
		starPos, ok := s.world.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}
		if !vmath.CirclesOverlap(playerPos.Position, starPos.Position, cfg.Player.Size, cfg.Star.Size) {
			continue
		}

		s.world.Resources.Score.Add(1)
		s.world.Resources.Status.Int(status.KeyStarsCollected).Add(1)
		s.world.DestroyEntity(e)
		s.world.PlaySound(core.SoundStarPickup, parameter.StarVolume)
		s.world.PushEvent(event.EventStarCollected, &event.EntityPayload{Entity: e})
	}
}
