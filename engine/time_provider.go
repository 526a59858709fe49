package engine

import "time"

// TimeProvider supplies the loop clock and its pacing sleep
type TimeProvider interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// MonotonicTimeProvider uses the real system clock with monotonic readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// Sleep pauses the calling goroutine
func (p *MonotonicTimeProvider) Sleep(d time.Duration) {
	time.Sleep(d)
}
