package trace

import (
	"fmt"
	"image"
	"io"

	"golang.org/x/image/draw"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WritePNG renders the trajectory as a PNG line chart.
func WritePNG(w io.Writer, title string, samples []Sample) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "seconds"
	p.Y.Label.Text = "position"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(samples))
	for i, s := range samples {
		xys[i].X = s.At.Seconds()
		xys[i].Y = s.Value
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("failed to build trajectory line: %w", err)
	}
	p.Add(line)

	wt, err := p.WriterTo(18*vg.Centimeter, 9*vg.Centimeter, "png")
	if err != nil {
		return fmt.Errorf("failed to render trajectory: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write trajectory png: %w", err)
	}
	return nil
}

// Thumbnail downscales a rendered chart, preserving smooth lines, for
// embedding in overviews that show many trajectories side by side.
func Thumbnail(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
