package ports

import "time"

// Scheduler runs a function once after a delay. It abstracts delayed
// follow-ups (like the simulated captain confirmation) away from the
// handlers, so tests can fire them synchronously.
type Scheduler interface {
	// After schedules fn to run once after d has elapsed.
	After(d time.Duration, fn func())
}
