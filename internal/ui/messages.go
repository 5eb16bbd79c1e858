package ui

import (
	"userdeck/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// timerFiredMsg carries a debounce expiry into the Update loop
type timerFiredMsg struct {
	timer *programTimer
}

// pagerClosedMsg contains the result of a pager command
type pagerClosedMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
