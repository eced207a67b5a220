package probe

import "time"

// Clock supplies wall-clock timestamps and monotonic elapsed-time
// measurement. Swappable in tests.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

type systemClock struct{}

func (systemClock) Now() time.Time                  { return time.Now() }
func (systemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// SystemClock returns the real monotonic clock.
func SystemClock() Clock {
	return systemClock{}
}
