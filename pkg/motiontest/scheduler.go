package motiontest

import (
	"time"

	"github.com/go-drift/kinetic/pkg/motion"
)

// ManualScheduler is a motion.Scheduler whose ticks are fired explicitly
// by the test. It records every Start period so tests can assert on the
// pacing the position requested.
type ManualScheduler struct {
	tick    func()
	running bool

	// Starts holds the period passed to each Start call, in order.
	Starts []time.Duration
	// Stops counts Stop calls, including redundant ones.
	Stops int
	// Fired counts ticks delivered via Fire.
	Fired int
}

// Bind attaches the position's tick callback and returns the scheduler,
// matching the motion.WithScheduler factory shape.
func (s *ManualScheduler) Bind(tick func()) motion.Scheduler {
	s.tick = tick
	return s
}

// Start arms the scheduler, recording the period.
func (s *ManualScheduler) Start(period time.Duration) {
	s.Starts = append(s.Starts, period)
	s.running = true
}

// Stop disarms the scheduler.
func (s *ManualScheduler) Stop() {
	s.Stops++
	s.running = false
}

// IsRunning reports whether the scheduler is armed.
func (s *ManualScheduler) IsRunning() bool {
	return s.running
}

// LastStart returns the most recent Start period, or zero if Start has
// never been called.
func (s *ManualScheduler) LastStart() time.Duration {
	if len(s.Starts) == 0 {
		return 0
	}
	return s.Starts[len(s.Starts)-1]
}

// Fire delivers one tick if the scheduler is armed.
func (s *ManualScheduler) Fire() {
	if !s.running || s.tick == nil {
		return
	}
	s.Fired++
	s.tick()
}

// RunUntilStopped fires ticks, advancing clock by step before each one,
// until the position stops the scheduler or maxTicks is reached. It
// returns the number of ticks fired.
func (s *ManualScheduler) RunUntilStopped(clock *FakeClock, step time.Duration, maxTicks int) int {
	fired := 0
	for s.running && fired < maxTicks {
		clock.Advance(step)
		s.Fire()
		fired++
	}
	return fired
}
