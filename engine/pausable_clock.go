package engine

import (
	"sync"
	"time"
)

// PausableClock measures elapsed run time excluding pauses
type PausableClock struct {
	mu sync.RWMutex

	tp              TimeProvider
	startTime       time.Time
	paused          bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a running clock starting now
func NewPausableClock(tp TimeProvider) *PausableClock {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		tp:        tp,
		startTime: tp.Now(),
	}
}

// Reset restarts the clock from zero, running
func (pc *PausableClock) Reset() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.startTime = pc.tp.Now()
	pc.paused = false
	pc.pauseStartTime = time.Time{}
	pc.totalPausedTime = 0
}

// Elapsed returns unpaused time since the last Reset
// Frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	now := pc.tp.Now()
	if pc.paused {
		now = pc.pauseStartTime
	}
	return now.Sub(pc.startTime) - pc.totalPausedTime
}

// Pause stops time advancement; no-op if already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.tp.Now()
}

// Resume continues time advancement; no-op if running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.tp.Now().Sub(pc.pauseStartTime)
	pc.paused = false
	pc.pauseStartTime = time.Time{}
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.tp.Now().Sub(pc.pauseStartTime)
	}
	return total
}
