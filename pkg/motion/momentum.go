package motion

import "math"

// Momentum lets a released position coast in the direction it was thrown,
// slowing under friction until the velocity drops below a minimum and the
// motion stops. This is the behaviour of a free-scrolling list.
type Momentum struct {
	velocity        float64
	damping         float64
	minimumVelocity float64
}

// NewMomentum returns a momentum behaviour with a friction of 0.08 and a
// minimum velocity of 0.1 units/second.
func NewMomentum() *Momentum {
	return &Momentum{damping: 0.92, minimumVelocity: 0.1}
}

// SetFriction sets the fraction of velocity lost per tick, between 0
// (frictionless, never stops on its own) and 1 (stops immediately).
func (m *Momentum) SetFriction(friction float64) {
	m.damping = 1 - friction
}

// SetMinimumVelocity sets the speed below which the motion is considered
// stopped, in units per second.
func (m *Momentum) SetMinimumVelocity(v float64) {
	m.minimumVelocity = math.Abs(v)
}

// Velocity returns the current internal velocity in units per second.
func (m *Momentum) Velocity() float64 {
	return m.velocity
}

// ReleasedWithVelocity replaces the internal velocity with the latest
// estimate, so the momentum tracks the drag right up to the release.
func (m *Momentum) ReleasedWithVelocity(_, velocity float64) {
	m.velocity = velocity
}

// NextPosition applies one tick of friction and advances the position.
func (m *Momentum) NextPosition(position, elapsed float64) float64 {
	m.velocity *= m.damping
	if math.Abs(m.velocity) < m.minimumVelocity {
		m.velocity = 0
	}
	return position + m.velocity*elapsed
}

// IsStopped reports whether friction has consumed all the velocity.
func (m *Momentum) IsStopped(float64) bool {
	return m.velocity == 0
}
