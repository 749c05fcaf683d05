// Package motion models a one-dimensional position that can be grabbed,
// dragged around by the user, and released, after which it keeps moving
// under a pluggable physics behaviour until it comes to rest.
//
// # Core Components
//
//   - [Position]: owns the scalar value, the drag lifecycle, the clamp
//     range and the listener list. External input drives it through
//     BeginDrag/Drag/EndDrag, Nudge and SetValue.
//
//   - [Behavior]: the pluggable trajectory strategy. Stock behaviours are
//     [Momentum] (free-running deceleration), [SnapToPage] (settle on
//     page boundaries) and [SpringBack] (spring toward a rest target).
//
//   - [Scheduler]: the periodic tick source that advances the behaviour
//     while motion is active. [TimerScheduler] is the production
//     implementation; tests inject a manually driven one.
//
//   - [Clock]: the time source used for velocity estimation and tick
//     pacing, injectable for deterministic tests.
//
// # Basic Usage
//
// Create a Position with a behaviour, feed it drag input, and observe
// value changes through a listener:
//
//	pos := motion.New(motion.NewMomentum())
//	pos.SetLimits(motion.Range{Min: 0, Max: contentHeight - viewport})
//	remove := pos.AddListener(func(p *motion.Position, v float64) {
//	    view.SetScrollOffset(v)
//	})
//
//	// From the host's pointer events:
//	pos.BeginDrag()
//	pos.Drag(pointerY - downY) // many times per second
//	pos.EndDrag()              // momentum takes over
//
//	// From wheel ticks:
//	pos.Nudge(-3 * lineHeight)
//
// The value can represent whatever unit the caller needs: pixels, pages,
// list rows. Listeners fire synchronously and only when the clamped value
// actually changes.
package motion
