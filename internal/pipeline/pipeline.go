package pipeline

import (
	"go.uber.org/zap"

	"userdeck/internal/domain"
)

// Pipeline wires a criteria store to a debounced scheduler over one dataset
type Pipeline struct {
	store       *Store
	scheduler   *Scheduler
	unsubscribe func()
}

// New creates a pipeline whose scheduler observes every store edit
func New(dataset []domain.UserRecord, timers TimerFactory, logger *zap.SugaredLogger) *Pipeline {
	store := NewStore()
	scheduler := NewScheduler(dataset, timers, logger)
	return &Pipeline{
		store:       store,
		scheduler:   scheduler,
		unsubscribe: store.Subscribe(scheduler.Notify),
	}
}

// Store returns the criteria store
func (p *Pipeline) Store() *Store {
	return p.store
}

// Scheduler returns the debounced scheduler
func (p *Pipeline) Scheduler() *Scheduler {
	return p.scheduler
}

// SetField edits one criteria field
func (p *Pipeline) SetField(f Field, value string) {
	p.store.SetField(f, value)
}

// Snapshot returns the scheduler's current published state
func (p *Pipeline) Snapshot() Snapshot {
	return p.scheduler.Snapshot()
}

// Dispose detaches the store and cancels any pending evaluation
func (p *Pipeline) Dispose() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	p.scheduler.Dispose()
}
