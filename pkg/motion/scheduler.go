package motion

import (
	"sync"
	"time"
)

// Scheduler delivers periodic ticks to a Position while its trajectory is
// active. Calling Start while the scheduler is already running re-arms it
// with the new period; Stop is idempotent.
//
// A Position re-arms or stops its scheduler from within every tick, so a
// conforming implementation only needs to keep ticking at the most recent
// period until told otherwise.
type Scheduler interface {
	Start(period time.Duration)
	Stop()
	IsRunning() bool
}

// TimerScheduler is the production Scheduler, backed by time.Timer.
//
// Ticks fire on the timer's own goroutine. Hosts that require
// single-threaded delivery (the usual case for UI work) should forward
// the callback onto their event loop, the same way an engine frame loop
// pumps animation tickers.
type TimerScheduler struct {
	mu      sync.Mutex
	tick    func()
	timer   *time.Timer
	period  time.Duration
	running bool
	gen     uint64
}

// NewTimerScheduler creates a scheduler that invokes tick on each period.
func NewTimerScheduler(tick func()) *TimerScheduler {
	return &TimerScheduler{tick: tick}
}

// Start arms the scheduler with the given period, replacing any pending
// tick.
func (s *TimerScheduler) Start(period time.Duration) {
	if period <= 0 {
		period = time.Millisecond
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.period = period
	s.running = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(period, s.fire)
}

// Stop cancels any pending tick. Safe to call repeatedly.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.running = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// IsRunning reports whether a tick is pending.
func (s *TimerScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *TimerScheduler) fire() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	gen := s.gen
	s.mu.Unlock()

	s.tick()

	// Re-arm only if the callback did not itself call Start or Stop.
	s.mu.Lock()
	if s.running && s.gen == gen {
		s.timer = time.AfterFunc(s.period, s.fire)
	}
	s.mu.Unlock()
}
