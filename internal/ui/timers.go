package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"userdeck/internal/pipeline"
)

// programTimers schedules pipeline timers whose expiry is delivered as a
// message, so the callback runs on the Update goroutine.
type programTimers struct {
	send func(tea.Msg)
}

func newProgramTimers(send func(tea.Msg)) *programTimers {
	return &programTimers{send: send}
}

// Start implements pipeline.TimerFactory
func (p *programTimers) Start(d time.Duration, fire func()) pipeline.Timer {
	t := &programTimer{fire: fire}
	t.timer = time.AfterFunc(d, func() {
		p.send(timerFiredMsg{timer: t})
	})
	return t
}

// programTimer is only cancelled and fired from the Update loop
type programTimer struct {
	timer     *time.Timer
	fire      func()
	cancelled bool
}

// Cancel implements pipeline.Timer. A message already queued by the
// runtime is dropped when it arrives.
func (t *programTimer) Cancel() {
	t.cancelled = true
	t.timer.Stop()
}

func (t *programTimer) deliver() {
	if t.cancelled {
		return
	}
	t.cancelled = true
	t.fire()
}
