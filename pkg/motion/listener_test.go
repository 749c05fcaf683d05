package motion

import "testing"

func TestListenerListRemoveDuringNotify(t *testing.T) {
	var l listenerList
	calls := make(map[string]int)

	var removeB func()
	l.add(func(*Position, float64) {
		calls["a"]++
		if removeB != nil {
			removeB()
			removeB = nil
		}
	})
	removeB = l.add(func(*Position, float64) { calls["b"]++ })

	l.notify(nil, 1)
	l.notify(nil, 2)

	if calls["a"] != 2 {
		t.Errorf("listener a fired %d times, want 2", calls["a"])
	}
	// b was removed during the first round; at most the first round may
	// have reached it before a ran, never the second.
	if calls["b"] > 1 {
		t.Errorf("removed listener b fired %d times", calls["b"])
	}
}

func TestListenerListAddDuringNotify(t *testing.T) {
	var l listenerList
	var added int

	l.add(func(p *Position, v float64) {
		if l.len() == 1 {
			l.add(func(*Position, float64) { added++ })
		}
	})

	l.notify(nil, 1)
	if added != 0 {
		t.Error("listener added during notification fired in the same round")
	}
	l.notify(nil, 2)
	if added != 1 {
		t.Errorf("new listener fired %d times in the next round, want 1", added)
	}
}

func TestListenerRemoveIsStable(t *testing.T) {
	var l listenerList
	var fired int
	remove := l.add(func(*Position, float64) { fired++ })
	remove()
	remove() // removing twice is harmless

	l.notify(nil, 1)
	if fired != 0 {
		t.Error("removed listener fired")
	}
}
