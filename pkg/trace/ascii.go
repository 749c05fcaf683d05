package trace

import "github.com/guptarohit/asciigraph"

// ASCII renders the trajectory as a terminal sparkline of the given
// height. Returns an empty string for an empty trajectory.
func ASCII(samples []Sample, height int) string {
	if len(samples) == 0 {
		return ""
	}
	if height <= 0 {
		height = 10
	}
	return asciigraph.Plot(Values(samples),
		asciigraph.Height(height),
		asciigraph.Caption("position over ticks"),
	)
}
