package system

import (
	"github.com/lixenwraith/ball-game/component"
	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/parameter"
	"github.com/lixenwraith/ball-game/vmath"
)

// SpawnPlayer creates the player at pos
func SpawnPlayer(w *engine.World, pos vmath.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos})
	w.Components.Player.SetComponent(e, component.PlayerComponent{})
	w.Components.Sprite.SetComponent(e, component.SpriteComponent{
		Shape: component.SpriteShapeDisc,
		Glyph: '█',
		Color: parameter.PlayerColor,
		Size:  w.Resources.Config.Player.Size,
	})
	return e
}

// SpawnEnemy creates an enemy at pos heading along dir (normalized here)
func SpawnEnemy(w *engine.World, pos, dir vmath.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos})
	w.Components.Enemy.SetComponent(e, component.EnemyComponent{Direction: dir.Normalize()})
	w.Components.Sprite.SetComponent(e, component.SpriteComponent{
		Shape: component.SpriteShapeDisc,
		Glyph: '█',
		Color: parameter.EnemyColor,
		Size:  w.Resources.Config.Enemy.Size,
	})
	return e
}

// SpawnStar creates a star at pos
func SpawnStar(w *engine.World, pos vmath.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos})
	w.Components.Star.SetComponent(e, component.StarComponent{})
	w.Components.Sprite.SetComponent(e, component.SpriteComponent{
		Shape: component.SpriteShapeGlyph,
		Glyph: '*',
		Color: parameter.StarColor,
		Size:  w.Resources.Config.Star.Size,
	})
	return e
}

// randomPosition returns a uniformly random point in the field
func randomPosition(w *engine.World) vmath.Vec2 {
	rng := w.Resources.Rand
	size := w.Resources.Window.Size
	return vmath.V2(rng.Float64()*size.X, rng.Float64()*size.Y)
}

// randomDirection returns normalize(rand, rand), components in [0,1)
// Both draws landing on exactly zero falls back to the diagonal
func randomDirection(w *engine.World) vmath.Vec2 {
	rng := w.Resources.Rand
	dir := vmath.V2(rng.Float64(), rng.Float64()).Normalize()
	if dir.IsZero() {
		return vmath.V2(1, 1).Normalize()
	}
	return dir
}

// spawnRandomEnemy places one enemy at a random position and direction
func spawnRandomEnemy(w *engine.World) core.Entity {
	return SpawnEnemy(w, randomPosition(w), randomDirection(w))
}

// spawnRandomStar places one star at a random position
func spawnRandomStar(w *engine.World) core.Entity {
	return SpawnStar(w, randomPosition(w))
}

// despawnAll destroys every entity that has a component in store
func despawnAll[T any](w *engine.World, store *engine.Store[T]) int {
	entities := store.GetAllEntities()
	for _, e := range entities {
		w.DestroyEntity(e)
	}
	return len(entities)
}
