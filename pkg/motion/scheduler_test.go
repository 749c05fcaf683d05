package motion

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTimerSchedulerFires(t *testing.T) {
	fired := make(chan struct{}, 1)
	s := NewTimerScheduler(func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	defer s.Stop()

	s.Start(time.Millisecond)
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler never fired")
	}
}

func TestTimerSchedulerRearmsUntilStopped(t *testing.T) {
	var count atomic.Int64
	done := make(chan struct{}, 1)
	s := NewTimerScheduler(func() {
		if count.Add(1) == 3 {
			select {
			case done <- struct{}{}:
			default:
			}
		}
	})
	defer s.Stop()

	s.Start(time.Millisecond)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("scheduler fired %d times, want at least 3", count.Load())
	}
}

func TestTimerSchedulerStopIdempotent(t *testing.T) {
	s := NewTimerScheduler(func() {})
	s.Stop()
	s.Stop()
	if s.IsRunning() {
		t.Error("stopped scheduler reports running")
	}

	s.Start(time.Hour)
	if !s.IsRunning() {
		t.Error("started scheduler reports stopped")
	}
	s.Stop()
	if s.IsRunning() {
		t.Error("stopped scheduler reports running")
	}
}

func TestTimerSchedulerStartRearms(t *testing.T) {
	fired := make(chan struct{}, 1)
	s := NewTimerScheduler(func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	defer s.Stop()

	// A pending far-future tick is replaced by the new period.
	s.Start(time.Hour)
	s.Start(time.Millisecond)
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("re-armed scheduler never fired")
	}
}
