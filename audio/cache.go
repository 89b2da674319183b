package audio

import (
	"sync"

	"github.com/lixenwraith/ball-game/core"
)

// soundCache stores pre-generated unity-gain float buffers
type soundCache struct {
	mu    sync.RWMutex
	store [core.SoundCount]floatBuffer
	ready [core.SoundCount]bool
}

func newSoundCache() *soundCache {
	return &soundCache{}
}

// get returns cached buffer or generates on demand
func (c *soundCache) get(st core.SoundType) floatBuffer {
	if st < 0 || int(st) >= core.SoundCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[st] {
		buf := c.store[st]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready[st] {
		return c.store[st]
	}

	buf := generateSound(st)
	c.store[st] = buf
	c.ready[st] = true
	return buf
}

// preload generates every sound so the first bounce does not stall a frame
func (c *soundCache) preload() {
	for st := 0; st < core.SoundCount; st++ {
		c.get(core.SoundType(st))
	}
}
