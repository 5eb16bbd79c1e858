// Package pipelinetest provides a manual clock for driving schedulers in tests.
package pipelinetest

import (
	"sort"
	"time"

	"userdeck/internal/pipeline"
)

// Clock is a pipeline.TimerFactory whose time only moves on Advance.
// Callbacks run synchronously inside Advance.
type Clock struct {
	now     time.Duration
	seq     int
	started int
	timers  []*timer

	// LeakyCancel makes Cancel a no-op, simulating a timer whose expiry
	// was already queued when it was cancelled.
	LeakyCancel bool
}

type timer struct {
	clock     *Clock
	at        time.Duration
	seq       int
	fire      func()
	cancelled bool
	fired     bool
}

// NewClock creates a clock at time zero
func NewClock() *Clock {
	return &Clock{}
}

// Start implements pipeline.TimerFactory
func (c *Clock) Start(d time.Duration, fire func()) pipeline.Timer {
	c.seq++
	c.started++
	t := &timer{clock: c, at: c.now + d, seq: c.seq, fire: fire}
	c.timers = append(c.timers, t)
	return t
}

// Cancel implements pipeline.Timer
func (t *timer) Cancel() {
	if t.clock.LeakyCancel {
		return
	}
	t.cancelled = true
}

// Started returns how many timers have been started
func (c *Clock) Started() int {
	return c.started
}

// Active returns how many timers are neither cancelled nor fired
func (c *Clock) Active() int {
	n := 0
	for _, t := range c.timers {
		if !t.cancelled && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, firing every due timer in order
func (c *Clock) Advance(d time.Duration) {
	target := c.now + d
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		c.now = next.at
		next.fired = true
		next.fire()
	}
	c.now = target
}

func (c *Clock) nextDue(target time.Duration) *timer {
	var due []*timer
	for _, t := range c.timers {
		if !t.cancelled && !t.fired && t.at <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}
