package engine

import "time"

// TimerMode selects whether a Timer wraps around after finishing
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer is a countdown advanced by Tick
// A repeating timer reports Finished only on the tick it wrapped;
// a one-shot timer stays finished until Reset
type Timer struct {
	duration      time.Duration
	elapsed       time.Duration
	mode          TimerMode
	finished      bool
	timesFinished int
}

func NewTimer(duration time.Duration, mode TimerMode) *Timer {
	return &Timer{duration: duration, mode: mode}
}

// Tick advances the timer by dt
func (t *Timer) Tick(dt time.Duration) {
	if t.mode == TimerOnce && t.finished {
		t.timesFinished = 0
		return
	}

	t.timesFinished = 0
	t.finished = false
	if t.duration <= 0 {
		t.finished = true
		t.timesFinished = 1
		return
	}

	t.elapsed += dt
	if t.elapsed < t.duration {
		return
	}

	t.finished = true
	if t.mode == TimerRepeating {
		t.timesFinished = int(t.elapsed / t.duration)
		t.elapsed %= t.duration
	} else {
		t.timesFinished = 1
		t.elapsed = t.duration
	}
}

// Finished reports whether the timer completed during the last Tick
func (t *Timer) Finished() bool {
	return t.finished
}

// TimesFinished returns how many periods elapsed during the last Tick
func (t *Timer) TimesFinished() int {
	return t.timesFinished
}

// Elapsed returns time accumulated toward the next completion
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the timer period
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Remaining returns time until the next completion
func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Reset restarts the countdown
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}
