package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ball-game/config"
	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// AudioEngine mixes synthesized sound effects onto the system speaker
type AudioEngine struct {
	config config.AudioConfig
	cache  *soundCache
	mixer  *beep.Mixer

	running atomic.Bool
	muted   atomic.Bool

	mu sync.Mutex // Serializes Start/Stop
}

// NewAudioEngine creates an engine; nothing is opened until Start
// Disabled audio starts muted so N can still turn it on
func NewAudioEngine(cfg config.AudioConfig) *AudioEngine {
	ae := &AudioEngine{
		config: cfg,
		cache:  newSoundCache(),
		mixer:  &beep.Mixer{},
	}
	ae.muted.Store(!cfg.Enabled)
	ae.cache.preload()
	return ae
}

// Start opens the speaker and begins streaming the mixer
func (ae *AudioEngine) Start() error {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if ae.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferSize)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(ae.mixer)
	ae.running.Store(true)
	return nil
}

// Stop silences all sounds and closes the speaker; idempotent
func (ae *AudioEngine) Stop() {
	ae.mu.Lock()
	defer ae.mu.Unlock()

	if !ae.running.CompareAndSwap(true, false) {
		return
	}
	speaker.Clear()
	speaker.Close()
}

// Play queues a sound at the given linear volume, scaled by the master volume
// Returns false when stopped or muted
func (ae *AudioEngine) Play(st core.SoundType, volume float64) bool {
	if !ae.running.Load() || ae.muted.Load() {
		return false
	}
	s := ae.streamer(st, volume)
	if s == nil {
		return false
	}

	speaker.Lock()
	ae.mixer.Add(s)
	speaker.Unlock()
	return true
}

// streamer builds the playable stream for a sound, nil for unknown types
func (ae *AudioEngine) streamer(st core.SoundType, volume float64) beep.Streamer {
	buf := ae.cache.get(st)
	if buf == nil {
		return nil
	}
	return newVolume(newBufferStreamer(buf), volume*ae.config.MasterVolume)
}

// ToggleMute toggles mute state, returns true if now muted
func (ae *AudioEngine) ToggleMute() bool {
	newMute := !ae.muted.Load()
	ae.muted.Store(newMute)
	return newMute
}

// IsMuted returns current mute state
func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// IsRunning returns true if the speaker is open
func (ae *AudioEngine) IsRunning() bool {
	return ae.running.Load()
}
