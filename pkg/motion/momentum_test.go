package motion_test

import (
	"math"
	"testing"

	"github.com/go-drift/kinetic/pkg/motion"
)

func TestMomentumDecaysToRest(t *testing.T) {
	m := motion.NewMomentum()
	m.ReleasedWithVelocity(0, 100)

	pos := 0.0
	prevSpeed := math.Abs(m.Velocity())
	ticks := 0
	for !m.IsStopped(pos) {
		pos = m.NextPosition(pos, 0.016)
		speed := math.Abs(m.Velocity())
		if speed > prevSpeed {
			t.Fatalf("speed increased from %v to %v", prevSpeed, speed)
		}
		prevSpeed = speed
		ticks++
		if ticks > 500 {
			t.Fatal("momentum did not come to rest")
		}
	}

	if pos <= 0 {
		t.Errorf("momentum moved to %v, want forward travel", pos)
	}
	if m.Velocity() != 0 {
		t.Errorf("velocity at rest = %v, want exactly 0", m.Velocity())
	}
}

func TestMomentumPreservesDirection(t *testing.T) {
	m := motion.NewMomentum()
	m.ReleasedWithVelocity(0, -40)

	pos := 0.0
	for i := 0; i < 500 && !m.IsStopped(pos); i++ {
		pos = m.NextPosition(pos, 0.016)
	}
	if pos >= 0 {
		t.Errorf("negative release moved to %v, want backward travel", pos)
	}
}

func TestMomentumSlowReleaseStopsImmediately(t *testing.T) {
	m := motion.NewMomentum()
	m.ReleasedWithVelocity(0, 0)
	if !m.IsStopped(0) {
		t.Error("zero release velocity should already be stopped")
	}
}

func TestMomentumFriction(t *testing.T) {
	m := motion.NewMomentum()
	m.SetFriction(0.5)
	m.ReleasedWithVelocity(0, 80)

	m.NextPosition(0, 0.016)
	if got := m.Velocity(); got != 40 {
		t.Errorf("velocity after one tick at friction 0.5 = %v, want 40", got)
	}
}

func TestMomentumMinimumVelocityCutoff(t *testing.T) {
	m := motion.NewMomentum()
	m.SetMinimumVelocity(10)
	m.ReleasedWithVelocity(0, 10.5)

	// 10.5 * 0.92 = 9.66, below the cutoff.
	m.NextPosition(0, 0.016)
	if m.Velocity() != 0 {
		t.Errorf("velocity below cutoff = %v, want 0", m.Velocity())
	}
	if !m.IsStopped(0) {
		t.Error("behaviour should be stopped once velocity is cut off")
	}
}

func TestMomentumTracksMidDragReleases(t *testing.T) {
	m := motion.NewMomentum()
	m.ReleasedWithVelocity(0, 100)
	m.ReleasedWithVelocity(5, 30)
	if got := m.Velocity(); got != 30 {
		t.Errorf("velocity = %v, want the latest estimate 30", got)
	}
}
