package platform

import "time"

// Timer is a pending AfterFunc call that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock provides the current time and one-shot timers.
// Implementations must be safe for concurrent use.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock is the Clock backed by the time package
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
