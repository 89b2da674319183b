package event

import (
	"sync"

	"github.com/lixenwraith/ball-game/parameter"
)

// EventQueue is a bounded FIFO of game events
// Push is safe from any goroutine; Consume belongs to the game loop
// When full, the oldest event is overwritten and counted as dropped
type EventQueue struct {
	mu      sync.Mutex
	ring    [parameter.EventQueueSize]GameEvent
	start   int // Index of the oldest pending event
	count   int
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, evicting the oldest pending event when the ring is full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == len(eq.ring) {
		eq.ring[eq.start] = ev
		eq.start = (eq.start + 1) % len(eq.ring)
		eq.dropped++
		return
	}
	eq.ring[(eq.start+eq.count)%len(eq.ring)] = ev
	eq.count++
}

// Consume returns all pending events in FIFO order, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == 0 {
		return nil
	}
	out := make([]GameEvent, eq.count)
	for i := range out {
		idx := (eq.start + i) % len(eq.ring)
		out[i] = eq.ring[idx]
		eq.ring[idx] = GameEvent{} // Release payload
	}
	eq.start, eq.count = 0, 0
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.count
}

// Dropped returns how many events were evicted by overflow since creation
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
