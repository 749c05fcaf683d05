package motion

// Listener receives a synchronous callback whenever a Position's value
// actually changes. The position handle is passed back so one listener
// can serve several positions.
type Listener func(p *Position, newValue float64)

// listenerList is an unordered listener registry that tolerates add and
// remove from within a notification callback. Notification iterates over
// a snapshot of the registered ids and re-checks membership before each
// call, so a listener removed mid-notification is skipped and one added
// mid-notification first fires on the next change.
type listenerList struct {
	next      int
	listeners map[int]Listener
}

func (l *listenerList) add(fn Listener) func() {
	if l.listeners == nil {
		l.listeners = make(map[int]Listener)
	}
	id := l.next
	l.next++
	l.listeners[id] = fn
	return func() {
		delete(l.listeners, id)
	}
}

func (l *listenerList) notify(p *Position, value float64) {
	if len(l.listeners) == 0 {
		return
	}
	ids := make([]int, 0, len(l.listeners))
	for id := range l.listeners {
		ids = append(ids, id)
	}
	for _, id := range ids {
		if fn, ok := l.listeners[id]; ok {
			fn(p, value)
		}
	}
}

func (l *listenerList) len() int {
	return len(l.listeners)
}
