package motion_test

import (
	"fmt"
	"time"

	"github.com/go-drift/kinetic/pkg/motion"
	"github.com/go-drift/kinetic/pkg/motiontest"
)

// This example drags a page-snapping position a little way and releases
// it, letting the behaviour settle it back onto the nearest boundary.
// A fake clock and manual scheduler make the run deterministic.
func ExamplePosition() {
	clock := motiontest.NewFakeClock()
	sched := &motiontest.ManualScheduler{}
	pos := motion.New(motion.NewSnapToPage(),
		motion.WithClock(clock),
		motion.WithScheduler(sched.Bind),
	)

	pos.BeginDrag()
	clock.Advance(time.Second)
	pos.Drag(0.4)
	pos.EndDrag()

	sched.RunUntilStopped(clock, 16*time.Millisecond, 1000)
	fmt.Printf("settled at %.0f\n", pos.Value())

	// Output:
	// settled at 0
}

// This example shows momentum scrolling clamped to a content range.
func ExamplePosition_momentum() {
	clock := motiontest.NewFakeClock()
	sched := &motiontest.ManualScheduler{}
	pos := motion.New(motion.NewMomentum(),
		motion.WithClock(clock),
		motion.WithScheduler(sched.Bind),
	)
	pos.SetLimits(motion.Range{Min: 0, Max: 40})

	motiontest.Fling(pos, clock, 900)
	sched.RunUntilStopped(clock, 16*time.Millisecond, 1000)

	fmt.Printf("rested at %.0f\n", pos.Value())

	// Output:
	// rested at 40
}
