package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps dt after stalls (terminal suspend, debugger) so entities don't tunnel
	MaxFrameDelta = 100 * time.Millisecond
)

// EventQueueSize is the event ring capacity; a tick emits a handful of events at most
const EventQueueSize = 256

// Terminal cell to world-unit mapping
// Terminal cells are roughly twice as tall as wide, so a cell covers 16x32 world units
const (
	CellWidth  = 16.0
	CellHeight = 32.0
)

// Input
const (
	// KeyHoldWindow is how long a key stays "pressed" after its last key-down/repeat event
	// Terminals don't report key release; this bridges the gap until auto-repeat kicks in
	KeyHoldWindow = 150 * time.Millisecond

	// KeyRepeatDelay is the gap a key must go quiet for before it counts as a new press
	// Terminal auto-repeat starts 250-600ms after key-down, past KeyHoldWindow, so a held key
	// would otherwise read as a second press when repeat kicks in
	KeyRepeatDelay = 500 * time.Millisecond
)
