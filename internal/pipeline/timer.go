package pipeline

import "time"

// Timer is a handle to one scheduled callback
type Timer interface {
	// Cancel prevents the callback from running if it has not run yet
	Cancel()
}

// TimerFactory schedules fire to run once after d.
// Implementations must run fire on the goroutine that drives the scheduler.
type TimerFactory interface {
	Start(d time.Duration, fire func()) Timer
}
