package anim

import (
	"sync"
	"time"
)

// Handle names a scheduled callback. Scheduling under a name that is
// already pending replaces the earlier callback.
type Handle string

// Scheduler owns a set of named, cancelable timers on a Clock.
type Scheduler struct {
	clock Clock

	mu      sync.Mutex
	gen     uint64
	pending map[Handle]scheduled
}

type scheduled struct {
	gen   uint64
	timer Timer
}

// NewScheduler creates a scheduler on the given clock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	return &Scheduler{clock: clock, pending: make(map[Handle]scheduled)}
}

// Clock returns the scheduler's clock.
func (s *Scheduler) Clock() Clock { return s.clock }

// After runs f once d has elapsed, unless the handle is cancelled or
// rescheduled first.
func (s *Scheduler) After(name Handle, d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.pending[name]; ok {
		prev.timer.Stop()
	}
	s.gen++
	gen := s.gen

	// The clock must not invoke the callback synchronously: it takes s.mu.
	t := s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		cur, ok := s.pending[name]
		if !ok || cur.gen != gen {
			// Cancelled or superseded after the timer fired.
			s.mu.Unlock()
			return
		}
		delete(s.pending, name)
		s.mu.Unlock()
		f()
	})
	s.pending[name] = scheduled{gen: gen, timer: t}
}

// Cancel stops the named callback. It reports whether one was pending.
func (s *Scheduler) Cancel(name Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.pending[name]
	if !ok {
		return false
	}
	prev.timer.Stop()
	delete(s.pending, name)
	return true
}

// CancelAll stops every pending callback.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, p := range s.pending {
		p.timer.Stop()
		delete(s.pending, name)
	}
}

// Pending reports whether the named callback is still waiting to fire.
func (s *Scheduler) Pending(name Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[name]
	return ok
}
