// Package scheduling provides the timer-backed Scheduler implementation.
package scheduling

import (
	"time"

	"github.com/wael7705/movo-project/internal/core/ports"
)

// TimerScheduler runs callbacks after a delay using the runtime timer heap.
// Callbacks run on their own goroutine and are lost on process restart,
// which is acceptable for short simulated delays.
type TimerScheduler struct{}

// NewTimerScheduler creates a timer-backed scheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

// After schedules fn to run once d has elapsed.
func (s *TimerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

var _ ports.Scheduler = (*TimerScheduler)(nil)
