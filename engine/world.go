package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/event"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.Mutex
	nextEntityID core.Entity

	Components ComponentStore
	Resources  *Resource

	eventQueue *event.EventQueue
	frame      atomic.Int64
}

// NewWorld creates a world with empty stores and default resources
func NewWorld(res *Resource) *World {
	if res == nil {
		res = NewResource(nil)
	}
	return &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resources:    res,
		eventQueue:   event.NewEventQueue(),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.Components.removeFromAll(e)
}

// Alive reports whether any component still references the entity
func (w *World) Alive(e core.Entity) bool {
	return w.Components.alive(e)
}

// Clear removes all entities and components; entity IDs are not reused
func (w *World) Clear() {
	w.Components.clearAll()
}

// FrameNumber returns the current frame index
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

func (w *World) nextFrame() int64 {
	return w.frame.Add(1)
}

// Events exposes the queue for the router and for tests
func (w *World) Events() *event.EventQueue {
	return w.eventQueue
}

// PushEvent emits a game event tagged with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}

// PlaySound is shorthand for a SoundRequest event
func (w *World) PlaySound(sound core.SoundType, volume float64) {
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: sound, Volume: volume})
}
