// Package uptime measures how long the process has been running
package uptime

import (
	"math"
	"time"
)

// Clock abstracts the wall clock so handlers can be tested deterministically
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock
type SystemClock struct{}

// Now returns the current local time
func (SystemClock) Now() time.Time { return time.Now() }

// Tracker reports uptime relative to a fixed start instant
type Tracker struct {
	start time.Time
}

// NewTracker creates a tracker anchored at start
func NewTracker(start time.Time) *Tracker {
	return &Tracker{start: start}
}

// Seconds returns the elapsed whole seconds at now, rounded half away from zero.
// A now before the start instant yields 0.
func (t *Tracker) Seconds(now time.Time) int64 {
	elapsed := now.Sub(t.start)
	if elapsed <= 0 {
		return 0
	}

	return int64(math.Round(elapsed.Seconds()))
}

// Timestamp returns now as milliseconds since the Unix epoch
func Timestamp(now time.Time) int64 {
	return now.UnixMilli()
}
