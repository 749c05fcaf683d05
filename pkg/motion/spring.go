package motion

import "math"

// Spring describes the physical constants of a damped spring.
type Spring struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

// IOSSpring returns a spring tuned to feel like the iOS scroll edge
// bounce: firm, settling without visible oscillation.
func IOSSpring() Spring {
	return Spring{Mass: 1, Stiffness: 170, Damping: 26}
}

// BouncySpring returns an underdamped spring with visible overshoot.
func BouncySpring() Spring {
	return Spring{Mass: 1, Stiffness: 180, Damping: 12}
}

// Rest thresholds for spring settling.
const (
	springRestDelta    = 0.001
	springRestVelocity = 0.01
)

// SpringSimulation integrates a damped spring from an initial position
// and velocity toward a target. Step it once per frame with the elapsed
// time in seconds.
type SpringSimulation struct {
	spring   Spring
	position float64
	velocity float64
	target   float64
	done     bool
}

// NewSpringSimulation creates a simulation starting at position with the
// given initial velocity, pulled toward target.
func NewSpringSimulation(spring Spring, position, velocity, target float64) *SpringSimulation {
	if spring.Mass <= 0 {
		spring.Mass = 1
	}
	return &SpringSimulation{
		spring:   spring,
		position: position,
		velocity: velocity,
		target:   target,
	}
}

// Step advances the simulation by dt seconds and reports whether it has
// settled. Semi-implicit Euler keeps the integration stable at UI frame
// rates.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done || dt <= 0 {
		return s.done
	}
	accel := (-s.spring.Stiffness*(s.position-s.target) - s.spring.Damping*s.velocity) / s.spring.Mass
	s.velocity += accel * dt
	s.position += s.velocity * dt

	if math.Abs(s.position-s.target) < springRestDelta && math.Abs(s.velocity) < springRestVelocity {
		s.position = s.target
		s.velocity = 0
		s.done = true
	}
	return s.done
}

// Position returns the current simulated position.
func (s *SpringSimulation) Position() float64 { return s.position }

// Velocity returns the current simulated velocity.
func (s *SpringSimulation) Velocity() float64 { return s.velocity }

// IsDone reports whether the simulation has settled on the target.
func (s *SpringSimulation) IsDone() bool { return s.done }

// SpringBack pulls a released position toward a fixed rest target with
// spring physics, carrying the release velocity into the spring. Useful
// for elements that return home when let go, like a dismissible sheet.
type SpringBack struct {
	spring Spring
	target float64
	sim    *SpringSimulation
}

// NewSpringBack returns a spring-back behaviour resting at target, using
// [IOSSpring] constants.
func NewSpringBack(target float64) *SpringBack {
	return &SpringBack{spring: IOSSpring(), target: target}
}

// SetSpring replaces the spring constants. Takes effect at the next
// release.
func (b *SpringBack) SetSpring(s Spring) {
	b.spring = s
}

// SetTarget moves the rest target. An in-flight trajectory retargets
// immediately, keeping its current position and velocity.
func (b *SpringBack) SetTarget(target float64) {
	b.target = target
	if b.sim != nil && !b.sim.IsDone() {
		b.sim = NewSpringSimulation(b.spring, b.sim.Position(), b.sim.Velocity(), target)
	}
}

// Target returns the rest target.
func (b *SpringBack) Target() float64 {
	return b.target
}

// ReleasedWithVelocity re-seeds the spring from the latest drag sample.
func (b *SpringBack) ReleasedWithVelocity(position, velocity float64) {
	b.sim = NewSpringSimulation(b.spring, position, velocity, b.target)
}

// NextPosition advances the spring by elapsed seconds.
func (b *SpringBack) NextPosition(position, elapsed float64) float64 {
	if b.sim == nil {
		b.sim = NewSpringSimulation(b.spring, position, 0, b.target)
	}
	b.sim.Step(elapsed)
	return b.sim.Position()
}

// IsStopped reports whether the spring has settled on the target.
func (b *SpringBack) IsStopped(float64) bool {
	return b.sim != nil && b.sim.IsDone()
}
