package parameter

import "time"

// Audio engine
const (
	AudioSampleRate = 44100
	AudioBufferSize = 100 * time.Millisecond
)

// Per-sound playback volumes (linear, 1.0 = unity)
const (
	BumpVolume      = 0.2
	ExplosionVolume = 1.0
	StarVolume      = 0.5
)

// Sound shapes
const (
	PluckDuration     = 180 * time.Millisecond
	PluckAttack       = 2 * time.Millisecond
	PluckLowFreq      = 330.0
	PluckHighFreq     = 440.0
	ExplosionDuration = 600 * time.Millisecond
	ExplosionAttack   = 5 * time.Millisecond
	LaserDuration     = 220 * time.Millisecond
	LaserAttack       = 3 * time.Millisecond
	LaserStartFreq    = 1800.0
	LaserEndFreq      = 300.0
)
