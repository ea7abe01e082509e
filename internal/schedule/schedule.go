package schedule

import (
	"sync"
	"time"
)

// Timer is the part of *time.Timer the scheduler needs.
type Timer interface {
	Stop() bool
}

// AfterFunc starts fn after d. time.AfterFunc satisfies it.
type AfterFunc func(d time.Duration, fn func()) Timer

func realAfterFunc(d time.Duration, fn func()) Timer { return time.AfterFunc(d, fn) }

// Scheduler runs deferred callbacks keyed by purpose. Scheduling under a key
// that already has a pending callback cancels the pending one.
type Scheduler struct {
	after AfterFunc

	mu      sync.Mutex
	pending map[string]*entry
	stopped bool
	seq     uint64
}

type entry struct {
	id    uint64
	timer Timer
}

func New() *Scheduler { return NewWithClock(realAfterFunc) }

// NewWithClock builds a scheduler on a custom AfterFunc.
func NewWithClock(after AfterFunc) *Scheduler {
	return &Scheduler{after: after, pending: map[string]*entry{}}
}

// After schedules fn under key, replacing whatever was pending there.
func (s *Scheduler) After(key string, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if old, ok := s.pending[key]; ok {
		old.timer.Stop()
	}
	s.seq++
	id := s.seq
	e := &entry{id: id}
	s.pending[key] = e
	e.timer = s.after(d, func() {
		s.mu.Lock()
		cur, ok := s.pending[key]
		if !ok || cur.id != id {
			s.mu.Unlock()
			return
		}
		delete(s.pending, key)
		s.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending callback under key. It reports whether one existed.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.pending[key]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(s.pending, key)
	return true
}

// Pending reports whether a callback is waiting under key.
func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[key]
	return ok
}

// Stop cancels everything and refuses new work.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for k, e := range s.pending {
		e.timer.Stop()
		delete(s.pending, k)
	}
}
