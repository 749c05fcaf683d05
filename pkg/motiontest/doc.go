// Package motiontest provides deterministic test doubles for driving
// motion.Position without real time: a controllable clock, a manually
// fired scheduler, a change recorder, and a drag script helper.
//
// A typical test wires all three:
//
//	clock := motiontest.NewFakeClock()
//	sched := &motiontest.ManualScheduler{}
//	pos := motion.New(motion.NewMomentum(),
//	    motion.WithClock(clock),
//	    motion.WithScheduler(sched.Bind),
//	)
//	rec := motiontest.NewRecorder(pos)
//
//	pos.BeginDrag()
//	clock.Advance(16 * time.Millisecond)
//	pos.Drag(40)
//	pos.EndDrag()
//	for sched.IsRunning() {
//	    clock.Advance(16 * time.Millisecond)
//	    sched.Fire()
//	}
package motiontest
