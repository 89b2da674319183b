package engine

import (
	"github.com/lixenwraith/ball-game/component"
	"github.com/lixenwraith/ball-game/core"
)

// ComponentStore holds one typed store per component
type ComponentStore struct {
	Transform *Store[component.TransformComponent]
	Player    *Store[component.PlayerComponent]
	Enemy     *Store[component.EnemyComponent]
	Star      *Store[component.StarComponent]
	Sprite    *Store[component.SpriteComponent]

	all []AnyStore
}

func newComponentStore() ComponentStore {
	cs := ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Player:    NewStore[component.PlayerComponent](),
		Enemy:     NewStore[component.EnemyComponent](),
		Star:      NewStore[component.StarComponent](),
		Sprite:    NewStore[component.SpriteComponent](),
	}
	cs.all = []AnyStore{cs.Transform, cs.Player, cs.Enemy, cs.Star, cs.Sprite}
	return cs
}

func (cs *ComponentStore) removeFromAll(e core.Entity) {
	for _, s := range cs.all {
		s.RemoveEntity(e)
	}
}

func (cs *ComponentStore) clearAll() {
	for _, s := range cs.all {
		s.ClearAllComponents()
	}
}

// alive reports whether any store still references the entity
func (cs *ComponentStore) alive(e core.Entity) bool {
	for _, s := range cs.all {
		if s.HasEntity(e) {
			return true
		}
	}
	return false
}
