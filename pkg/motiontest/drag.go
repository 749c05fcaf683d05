package motiontest

import (
	"time"

	"github.com/go-drift/kinetic/pkg/motion"
)

// DragSample is one step of a scripted drag: wait After on the fake
// clock, then report the pointer at Delta units from the grab point.
type DragSample struct {
	After time.Duration
	Delta float64
}

// Drag replays a full drag gesture against the position: BeginDrag, the
// samples in order, then EndDrag. The clock must be the one the position
// was built with.
func Drag(p *motion.Position, clock *FakeClock, samples ...DragSample) {
	p.BeginDrag()
	for _, s := range samples {
		clock.Advance(s.After)
		p.Drag(s.Delta)
	}
	p.EndDrag()
}

// Fling performs a drag whose final sample moves at the given velocity
// (units/second), so the release velocity estimate lands on exactly that
// value. Useful for seeding behaviours with a known speed.
func Fling(p *motion.Position, clock *FakeClock, velocity float64) {
	const step = 100 * time.Millisecond
	p.BeginDrag()
	// The first sample only primes the drag timestamp; the estimate for
	// the second sample then spans exactly one step.
	p.Drag(0)
	clock.Advance(step)
	p.Drag(velocity * step.Seconds())
	p.EndDrag()
}
