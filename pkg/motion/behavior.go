package motion

// Behavior computes the trajectory a position follows once the user lets
// go of it. A Position owns exactly one Behavior for its lifetime and
// never inspects its internals; swapping the implementation changes the
// feel of the motion (free momentum, page snapping, spring return).
//
// Behaviours may carry their own mutable state, typically a decaying
// velocity or a snap target. All calls arrive on the host's event thread.
type Behavior interface {
	// ReleasedWithVelocity tells the behaviour the position is moving at
	// the given estimated velocity (units per second). It is called on
	// every drag sample and on nudges, not only at the final release, so
	// behaviours with internal momentum state can track it continuously.
	ReleasedWithVelocity(position, velocity float64)

	// NextPosition returns the position after elapsed seconds of
	// unattended motion, advancing any internal state.
	NextPosition(position, elapsed float64) float64

	// IsStopped reports whether the trajectory has settled at position.
	// Once true, the position stops ticking until new input arrives.
	IsStopped(position float64) bool
}
