package motion

import "time"

// Clock supplies the time used for drag velocity estimation and tick
// pacing. The default implementation uses system time. Tests inject a
// fake clock to control timing deterministically.
type Clock interface {
	Now() time.Time
}

// systemClock uses system time.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the default wall-clock time source.
func SystemClock() Clock { return systemClock{} }
