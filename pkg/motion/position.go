package motion

import (
	"math"
	"time"
)

const (
	// steadyTick is the tick period while a released trajectory is
	// advancing, roughly one tick per display frame.
	steadyTick = time.Second / 60

	// nudgeTick is the initial period after a nudge. It is longer than a
	// frame so a burst of wheel ticks coalesces before motion starts, but
	// short enough that continuation feels immediate.
	nudgeTick = 100 * time.Millisecond

	// minDragInterval floors the elapsed time used for velocity
	// estimation, so two samples in the same millisecond cannot produce
	// a runaway velocity.
	minDragInterval = 0.005

	// velocityNoiseFloor is the speed (units/second) below which a drag
	// sample is treated as an unintentional wobble and reported as zero.
	velocityNoiseFloor = 0.2

	// Tick elapsed time is clamped to this window. The upper bound keeps
	// the behaviour from seeing one huge step after the host was
	// suspended or a frame was badly delayed.
	minTickElapsed = 0.001
	maxTickElapsed = 0.020
)

// Position models a 1-dimensional value that can be dragged around by the
// user and keeps moving under its [Behavior] when released.
//
// All methods must be called from the host's event thread; scheduler
// ticks are the only other source of control flow and the host is
// responsible for serializing them with input (see [TimerScheduler]).
type Position struct {
	behavior  Behavior
	clock     Clock
	scheduler Scheduler

	value           float64
	grabbed         float64
	releaseVelocity float64
	limits          Range
	lastUpdate      time.Time
	lastDrag        time.Time
	listeners       listenerList
}

// Option configures a Position at construction time.
type Option func(*Position)

// WithClock replaces the time source. Tests use this with a fake clock to
// make velocity estimation and tick pacing deterministic.
func WithClock(c Clock) Option {
	return func(p *Position) {
		if c != nil {
			p.clock = c
		}
	}
}

// WithScheduler replaces the tick scheduler. The factory receives the
// position's tick callback so tests can capture a manually driven
// scheduler:
//
//	sched := &motiontest.ManualScheduler{}
//	pos := motion.New(behavior, motion.WithScheduler(sched.Bind))
func WithScheduler(factory func(tick func()) Scheduler) Option {
	return func(p *Position) {
		if factory != nil {
			p.scheduler = factory(p.tick)
		}
	}
}

// New creates a Position driven by the given behaviour. The behaviour is
// owned by the position for its whole lifetime; use [Position.Behavior]
// to tune its parameters.
func New(behavior Behavior, opts ...Option) *Position {
	p := &Position{
		behavior: behavior,
		clock:    SystemClock(),
		limits:   Unbounded(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.scheduler == nil {
		p.scheduler = NewTimerScheduler(p.tick)
	}
	return p
}

// Behavior returns the trajectory behaviour so callers can tune its
// parameters.
func (p *Position) Behavior() Behavior {
	return p.behavior
}

// SetLimits replaces the range the value is constrained to. The current
// value is not re-clamped immediately; the new limits apply on the next
// write. Callers relying on a temporarily out-of-range value keep it
// until something moves.
func (p *Position) SetLimits(limits Range) {
	p.limits = limits
}

// Limits returns the current clamp range.
func (p *Position) Limits() Range {
	return p.limits
}

// BeginDrag indicates the value is now being controlled by a mouse drag
// or similar gesture. It captures the grab point, resets the release
// velocity and halts any in-flight automatic motion. Calling it again
// without an intervening EndDrag has the same effect as calling it once.
//
// Follow with Drag calls while the pointer moves and finish with EndDrag
// so the behaviour can take over.
func (p *Position) BeginDrag() {
	p.grabbed = p.value
	p.releaseVelocity = 0
	p.scheduler.Stop()
}

// Drag moves the value during a drag gesture. The delta is measured from
// the position captured by BeginDrag, not from the previous sample, so
// out-of-order or coalesced pointer events cannot accumulate error.
func (p *Position) Drag(deltaFromStart float64) {
	p.moveTo(p.grabbed + deltaFromStart)
}

// EndDrag finishes a drag gesture and hands the trajectory to the
// behaviour, which starts advancing on the next tick. The value itself
// does not change until then.
func (p *Position) EndDrag() {
	p.scheduler.Start(steadyTick)
}

// Nudge applies a one-shot relative move outside of a drag gesture and
// schedules continuation motion. Intended for discrete inputs such as
// mouse-wheel ticks.
func (p *Position) Nudge(delta float64) {
	p.scheduler.Start(nudgeTick)
	p.moveTo(p.value + delta)
}

// Value returns the current clamped value.
func (p *Position) Value() float64 {
	return p.value
}

// SetValue jumps the value directly, bypassing physics, and stops any
// further automatic movement. Listeners fire synchronously if the clamped
// value actually changes.
func (p *Position) SetValue(v float64) {
	p.scheduler.Stop()
	p.publish(v)
}

// ReleaseVelocity returns the velocity estimated at the most recent drag
// sample or nudge, in units per second. It is only meaningful immediately
// after a release; it is not maintained while the behaviour runs.
func (p *Position) ReleaseVelocity() float64 {
	return p.releaseVelocity
}

// IsMoving reports whether the behaviour-driven trajectory is still
// advancing.
func (p *Position) IsMoving() bool {
	return p.scheduler.IsRunning()
}

// AddListener registers a callback fired synchronously on every actual
// value change. The returned function removes the listener; both adding
// and removing are safe from within a notification.
func (p *Position) AddListener(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	return p.listeners.add(fn)
}

// moveTo is the shared path for Drag and Nudge: estimate the velocity
// from the previous drag sample, let the behaviour track it, then clamp
// and publish.
func (p *Position) moveTo(newPos float64) {
	now := p.clock.Now()
	p.releaseVelocity = dragSpeed(p.lastDrag, p.value, now, newPos)
	p.behavior.ReleasedWithVelocity(newPos, p.releaseVelocity)
	p.lastDrag = now

	p.publish(newPos)
}

// publish clamps the candidate value and notifies listeners only when the
// stored value actually changes. The exact-equality compare is a
// correctness requirement: listeners may treat a callback as "the value
// changed".
func (p *Position) publish(v float64) {
	v = p.limits.Clamp(v)
	if p.value != v {
		p.value = v
		p.listeners.notify(p, v)
	}
}

// tick advances the trajectory by one scheduler period.
func (p *Position) tick() {
	now := p.clock.Now()
	elapsed := now.Sub(p.lastUpdate).Seconds()
	if elapsed < minTickElapsed {
		elapsed = minTickElapsed
	} else if elapsed > maxTickElapsed {
		elapsed = maxTickElapsed
	}
	p.lastUpdate = now

	next := p.behavior.NextPosition(p.value, elapsed)

	if p.behavior.IsStopped(next) {
		p.scheduler.Stop()
	} else {
		p.scheduler.Start(steadyTick)
	}

	// The final value is published even when the trajectory just stopped.
	p.publish(next)
}

// dragSpeed estimates the velocity between two drag samples in units per
// second, flooring the interval and suppressing jitter below the noise
// floor.
func dragSpeed(lastTime time.Time, lastPos float64, now time.Time, newPos float64) float64 {
	elapsed := now.Sub(lastTime).Seconds()
	if elapsed < minDragInterval {
		elapsed = minDragInterval
	}
	v := (newPos - lastPos) / elapsed
	if math.Abs(v) <= velocityNoiseFloor {
		return 0
	}
	return v
}
