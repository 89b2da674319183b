package input

import (
	"time"

	"github.com/lixenwraith/ball-game/core"
)

// Keyboard tracks held keys for a terminal that only reports key-down and auto-repeat
// A key counts as pressed until holdWindow passes without another event for it
// A key counts as just pressed only after edgeGap of silence, which spans the
// auto-repeat start delay
// Not safe for concurrent use; the game loop owns it
type Keyboard struct {
	holdWindow  time.Duration
	edgeGap     time.Duration
	lastSeen    [core.KeyCount]time.Time
	justPressed [core.KeyCount]bool
	now         time.Time
}

// NewKeyboard creates a keyboard; repeatDelay below holdWindow is raised to it
func NewKeyboard(holdWindow, repeatDelay time.Duration) *Keyboard {
	return &Keyboard{holdWindow: holdWindow, edgeGap: max(holdWindow, repeatDelay)}
}

// Press records a key-down or repeat at the given time
// JustPressed is set only if the key was quiet for the edge gap
func (k *Keyboard) Press(key core.Key, at time.Time) {
	if key <= core.KeyNone || int(key) >= core.KeyCount {
		return
	}
	seen := k.lastSeen[key]
	if seen.IsZero() || at.Sub(seen) > k.edgeGap {
		k.justPressed[key] = true
	}
	k.lastSeen[key] = at
}

// ReleaseAll forgets every key, used when the terminal loses focus
func (k *Keyboard) ReleaseAll() {
	for i := range k.lastSeen {
		k.lastSeen[i] = time.Time{}
		k.justPressed[i] = false
	}
}

// BeginFrame sets the reference time for Pressed queries in this frame
func (k *Keyboard) BeginFrame(now time.Time) {
	k.now = now
}

// EndFrame clears edge-triggered state
func (k *Keyboard) EndFrame() {
	for i := range k.justPressed {
		k.justPressed[i] = false
	}
}

// Pressed reports whether the key is held as of the current frame
func (k *Keyboard) Pressed(key core.Key) bool {
	if key <= core.KeyNone || int(key) >= core.KeyCount {
		return false
	}
	return k.heldAt(key, k.now)
}

// AnyPressed reports whether any of the keys is held
func (k *Keyboard) AnyPressed(keys ...core.Key) bool {
	for _, key := range keys {
		if k.Pressed(key) {
			return true
		}
	}
	return false
}

// JustPressed reports whether the key went down since the last EndFrame
func (k *Keyboard) JustPressed(key core.Key) bool {
	if key <= core.KeyNone || int(key) >= core.KeyCount {
		return false
	}
	return k.justPressed[key]
}

func (k *Keyboard) heldAt(key core.Key, at time.Time) bool {
	seen := k.lastSeen[key]
	if seen.IsZero() {
		return false
	}
	return at.Sub(seen) <= k.holdWindow
}
