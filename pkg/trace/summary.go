package trace

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary condenses a trajectory into the numbers that matter when
// tuning a behaviour.
type Summary struct {
	Min   float64
	Max   float64
	Mean  float64
	Final float64
	// PeakVelocity is the largest speed observed between two samples,
	// in units per second.
	PeakVelocity float64
	// Duration is the time of the last sample.
	Duration time.Duration
}

// Summarize computes a Summary over the samples. An empty trajectory
// yields the zero Summary.
func Summarize(samples []Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	values := Values(samples)
	s := Summary{
		Min:      floats.Min(values),
		Max:      floats.Max(values),
		Mean:     stat.Mean(values, nil),
		Final:    values[len(values)-1],
		Duration: samples[len(samples)-1].At,
	}

	for i := 1; i < len(samples); i++ {
		dt := (samples[i].At - samples[i-1].At).Seconds()
		if dt <= 0 {
			continue
		}
		speed := math.Abs(samples[i].Value-samples[i-1].Value) / dt
		if speed > s.PeakVelocity {
			s.PeakVelocity = speed
		}
	}
	return s
}
