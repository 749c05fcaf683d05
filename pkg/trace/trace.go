// Package trace records a position's trajectory and renders it for
// inspection, which is the practical way to tune physics profiles: run a
// fling, look at the curve, adjust friction or spring constants.
//
// Renderers cover three workflows: [ASCII] for a quick terminal look,
// [WritePNG] for a proper chart, and [WriteHTML] for an interactive one.
package trace

import (
	"time"

	"github.com/go-drift/kinetic/pkg/motion"
)

// Sample is one observed value change.
type Sample struct {
	// At is the time of the change relative to when recording started.
	At time.Duration
	// Value is the published position value.
	Value float64
}

// Recorder captures every change a position publishes, timestamped with
// the same clock the position runs on.
type Recorder struct {
	clock   motion.Clock
	start   time.Time
	samples []Sample
	remove  func()
}

// NewRecorder creates a recorder reading time from clock. Pass the clock
// the observed position was built with so sample times line up with the
// position's own notion of time.
func NewRecorder(clock motion.Clock) *Recorder {
	if clock == nil {
		clock = motion.SystemClock()
	}
	return &Recorder{clock: clock}
}

// Attach subscribes to the position and starts the sample timeline at
// the clock's current time. A recorder observes one position at a time;
// attaching again moves it.
func (r *Recorder) Attach(p *motion.Position) {
	r.Detach()
	r.start = r.clock.Now()
	r.remove = p.AddListener(func(_ *motion.Position, v float64) {
		r.samples = append(r.samples, Sample{At: r.clock.Now().Sub(r.start), Value: v})
	})
}

// Detach unsubscribes from the observed position, keeping the samples.
func (r *Recorder) Detach() {
	if r.remove != nil {
		r.remove()
		r.remove = nil
	}
}

// Samples returns the recorded samples in order.
func (r *Recorder) Samples() []Sample {
	return r.samples
}

// Reset clears the samples and restarts the timeline.
func (r *Recorder) Reset() {
	r.samples = nil
	r.start = r.clock.Now()
}

// Values extracts just the position values from samples.
func Values(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Value
	}
	return out
}
