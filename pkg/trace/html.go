package trace

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteHTML renders the trajectory as a self-contained interactive line
// chart.
func WriteHTML(w io.Writer, title string, samples []Sample) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "seconds"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "position"}),
	)

	xs := make([]string, len(samples))
	data := make([]opts.LineData, len(samples))
	for i, s := range samples {
		xs[i] = fmt.Sprintf("%.3f", s.At.Seconds())
		data[i] = opts.LineData{Value: s.Value}
	}
	line.SetXAxis(xs).AddSeries("position", data)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render trajectory html: %w", err)
	}
	return nil
}
