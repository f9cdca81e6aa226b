package uptime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackerSeconds(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewTracker(start)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    int64
	}{
		{"at start", 0, 0},
		{"below half second", 499 * time.Millisecond, 0},
		{"half second rounds up", 500 * time.Millisecond, 1},
		{"just under two", 1499 * time.Millisecond, 1},
		{"ninety seconds", 90 * time.Second, 90},
		{"clock went backwards", -5 * time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tracker.Seconds(start.Add(tt.elapsed)))
		})
	}
}

func TestTrackerSecondsNonDecreasing(t *testing.T) {
	start := time.Now()
	tracker := NewTracker(start)

	var last int64
	for i := 0; i < 100; i++ {
		got := tracker.Seconds(start.Add(time.Duration(i) * 137 * time.Millisecond))
		assert.GreaterOrEqual(t, got, last)
		last = got
	}
}

func TestTimestamp(t *testing.T) {
	now := time.UnixMilli(1714564800123)
	assert.Equal(t, int64(1714564800123), Timestamp(now))
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	got := SystemClock{}.Now()
	assert.False(t, got.Before(before))
}
