package core

import "time"

// Timer is a countdown driven by elapsed deltas rather than wall clock
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
}

// NewTimer creates a timer that becomes ready after d of accumulated updates
func NewTimer(d time.Duration) Timer {
	return Timer{duration: d}
}

// Update accumulates elapsed time; negative deltas are ignored
func (t *Timer) Update(delta time.Duration) {
	if delta > 0 {
		t.elapsed += delta
	}
}

// Ready reports whether the countdown has reached zero
func (t *Timer) Ready() bool {
	return t.elapsed >= t.duration
}

// Reset restarts the countdown, discarding any overshoot
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Consume removes one period from the accumulated time if ready
// Used by step-driven movers so long deltas produce several steps
func (t *Timer) Consume() bool {
	if t.duration <= 0 || t.elapsed < t.duration {
		return false
	}
	t.elapsed -= t.duration
	return true
}

// SetDuration changes the period without resetting progress
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
}

// Remaining returns the time left before the timer is ready
func (t *Timer) Remaining() time.Duration {
	if t.elapsed >= t.duration {
		return 0
	}
	return t.duration - t.elapsed
}

// RemainingFraction returns remaining/duration in [0, 1]
func (t *Timer) RemainingFraction() float64 {
	if t.duration <= 0 {
		return 0
	}
	return float64(t.Remaining()) / float64(t.duration)
}
