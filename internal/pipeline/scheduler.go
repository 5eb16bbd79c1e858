package pipeline

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"userdeck/internal/domain"
	apperrors "userdeck/internal/errors"
)

// DefaultDelay is the quiescence window before a filter pass runs
const DefaultDelay = 1000 * time.Millisecond

// State is the scheduler's position in its debounce cycle
type State int

const (
	// Idle: no criteria change has been seen yet
	Idle State = iota
	// Pending: a debounce window is open
	Pending
	// Settled: the published result matches the latest criteria
	Settled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// Snapshot is what the scheduler publishes after each transition
type Snapshot struct {
	State      State
	Criteria   SearchCriteria
	Results    []domain.UserRecord
	Generation uint64
	// Fault is set when the last evaluation failed and Results is the
	// previous good result.
	Fault error
}

// Pending reports whether a filter pass is outstanding
func (s Snapshot) Pending() bool {
	return s.State == Pending
}

// Scheduler debounces criteria changes into trailing-edge evaluations.
//
// It is not safe for concurrent use: Notify, Dispose and the timer
// callbacks must all run on one goroutine (the UI event loop).
type Scheduler struct {
	delay    time.Duration
	timers   TimerFactory
	evaluate EvaluateFunc
	dataset  []domain.UserRecord
	logger   *zap.SugaredLogger

	state       State
	criteria    SearchCriteria
	results     []domain.UserRecord
	lastGood    []domain.UserRecord
	fault       error
	generation  uint64
	handle      Timer
	disposed    bool
	evaluations int

	listeners []func(Snapshot)
}

// NewScheduler creates an idle scheduler over a read-only dataset.
// Until the first change the published result is the whole dataset.
func NewScheduler(dataset []domain.UserRecord, timers TimerFactory, logger *zap.SugaredLogger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	initial := make([]domain.UserRecord, len(dataset))
	copy(initial, dataset)
	return &Scheduler{
		delay:    DefaultDelay,
		timers:   timers,
		evaluate: Evaluate,
		dataset:  dataset,
		logger:   logger,
		state:    Idle,
		results:  initial,
		lastGood: initial,
	}
}

// SetDelay changes the quiescence window for subsequent changes
func (s *Scheduler) SetDelay(d time.Duration) {
	s.delay = d
}

// SetEvaluator replaces the predicate evaluator
func (s *Scheduler) SetEvaluator(fn EvaluateFunc) {
	s.evaluate = fn
}

// Subscribe registers fn to receive every published snapshot
func (s *Scheduler) Subscribe(fn func(Snapshot)) {
	s.listeners = append(s.listeners, fn)
}

// Snapshot returns the current published state
func (s *Scheduler) Snapshot() Snapshot {
	return Snapshot{
		State:      s.state,
		Criteria:   s.criteria,
		Results:    s.results,
		Generation: s.generation,
		Fault:      s.fault,
	}
}

// Evaluations returns how many times the evaluator has run
func (s *Scheduler) Evaluations() int {
	return s.evaluations
}

// Notify records a new criteria snapshot and (re)opens the debounce window.
// The displayed result is cleared until the window closes.
func (s *Scheduler) Notify(c SearchCriteria) {
	if s.disposed {
		return
	}

	s.cancelTimer()
	s.generation++
	gen := s.generation
	s.criteria = c
	s.results = nil
	s.fault = nil
	s.state = Pending
	s.handle = s.timers.Start(s.delay, func() { s.elapse(gen) })

	s.logger.Debugw("criteria changed", "generation", gen, "criteria", c)
	s.publish()
}

// Dispose cancels any outstanding window; the scheduler ignores all
// further input.
func (s *Scheduler) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.cancelTimer()
	s.logger.Debugw("scheduler disposed", "generation", s.generation)
}

func (s *Scheduler) cancelTimer() {
	if s.handle != nil {
		s.handle.Cancel()
		s.handle = nil
	}
}

func (s *Scheduler) elapse(gen uint64) {
	if s.disposed || gen != s.generation || s.state != Pending {
		s.logger.Debugw("dropping superseded timer", "generation", gen, "current", s.generation)
		return
	}
	s.handle = nil

	results, err := s.run(s.criteria)
	if err != nil {
		s.logger.Errorw("filter evaluation failed, keeping last result", "generation", gen, "error", err)
		s.results = s.lastGood
		s.fault = err
	} else {
		s.results = results
		s.lastGood = results
		s.fault = nil
	}
	s.state = Settled

	s.logger.Debugw("filter settled", "generation", gen, "results", len(s.results))
	s.publish()
}

// run invokes the evaluator, converting a panic into an EvaluationError
func (s *Scheduler) run(c SearchCriteria) (results []domain.UserRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.NewEvaluationError(fmt.Errorf("%v", r)).WithContext("generation", s.generation)
		}
	}()
	s.evaluations++
	return s.evaluate(c, s.dataset), nil
}

func (s *Scheduler) publish() {
	snapshot := s.Snapshot()
	for _, fn := range s.listeners {
		fn(snapshot)
	}
}
