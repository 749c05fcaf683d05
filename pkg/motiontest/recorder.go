package motiontest

import "github.com/go-drift/kinetic/pkg/motion"

// Recorder captures every change notification from a position, in order.
type Recorder struct {
	values []float64
	remove func()
}

// NewRecorder attaches a recorder to the position.
func NewRecorder(p *motion.Position) *Recorder {
	r := &Recorder{}
	r.remove = p.AddListener(func(_ *motion.Position, v float64) {
		r.values = append(r.values, v)
	})
	return r
}

// Values returns the recorded values in notification order.
func (r *Recorder) Values() []float64 {
	return r.values
}

// Count returns the number of notifications received.
func (r *Recorder) Count() int {
	return len(r.values)
}

// Last returns the most recent value, or zero if nothing was recorded.
func (r *Recorder) Last() float64 {
	if len(r.values) == 0 {
		return 0
	}
	return r.values[len(r.values)-1]
}

// Reset clears the recorded values without detaching.
func (r *Recorder) Reset() {
	r.values = nil
}

// Detach removes the recorder's listener.
func (r *Recorder) Detach() {
	if r.remove != nil {
		r.remove()
		r.remove = nil
	}
}
