// Package status holds live runtime counters for the debug overlay and the exit log
package status

import (
	"fmt"
	"sync/atomic"
)

// Key names one metric; the set is fixed at compile time
type Key int

const (
	KeyFPS Key = iota
	KeyEnemies
	KeyStars
	KeyBounces
	KeyStarsCollected
	KeySoundsPlayed
	KeySoundsDropped
	KeyRuns
	KeyEventsDropped

	keyCount
)

// kind selects the storage a metric is read from
type kind uint8

const (
	kindInt kind = iota
	kindFloat
)

var keyInfo = [keyCount]struct {
	name string
	kind kind
}{
	KeyFPS:            {"fps", kindFloat},
	KeyEnemies:        {"entities.enemies", kindInt},
	KeyStars:          {"entities.stars", kindInt},
	KeyBounces:        {"enemies.bounced", kindInt},
	KeyStarsCollected: {"stars.collected", kindInt},
	KeySoundsPlayed:   {"audio.played", kindInt},
	KeySoundsDropped:  {"audio.dropped", kindInt},
	KeyRuns:           {"runs", kindInt},
	KeyEventsDropped:  {"events.dropped", kindInt},
}

// String returns the metric name used in logs and the overlay
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyInfo[k].name
}

// Registry stores every metric in fixed slots
// Writers hold the returned pointers and update them atomically
type Registry struct {
	ints   [keyCount]atomic.Int64
	floats [keyCount]AtomicFloat
}

// NewRegistry creates a zeroed Registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Int returns the counter or gauge slot for an integer metric
func (r *Registry) Int(k Key) *atomic.Int64 {
	return &r.ints[k]
}

// Float returns the gauge slot for a float metric
func (r *Registry) Float(k Key) *AtomicFloat {
	return &r.floats[k]
}

// Metric is one formatted key/value pair
type Metric struct {
	Key   string
	Value string
}

// Snapshot formats every metric in key order
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, keyCount)
	for k := Key(0); k < keyCount; k++ {
		value := fmt.Sprintf("%d", r.ints[k].Load())
		if keyInfo[k].kind == kindFloat {
			value = fmt.Sprintf("%.1f", r.floats[k].Get())
		}
		out[k] = Metric{Key: k.String(), Value: value}
	}
	return out
}
