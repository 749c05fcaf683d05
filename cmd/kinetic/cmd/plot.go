package cmd

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/kinetic/pkg/motion"
	"github.com/go-drift/kinetic/pkg/motiontest"
	"github.com/go-drift/kinetic/pkg/profile"
	"github.com/go-drift/kinetic/pkg/trace"
)

var plotFlags struct {
	profile  string
	velocity float64
	from     float64
	min      float64
	max      float64
	duration time.Duration
	format   string
	out      string
}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Simulate a release and render the trajectory",
	Long: `Plot runs a deterministic fixed-step simulation of a fling: the
position is thrown with the given velocity and the selected profile's
behaviour carries it until it settles or the duration runs out. The
trajectory is rendered as an ascii sparkline, a png chart, or an
interactive html chart.`,
	RunE: runPlot,
}

func init() {
	f := plotCmd.Flags()
	f.StringVar(&plotFlags.profile, "profile", "list", "physics profile to simulate")
	f.Float64Var(&plotFlags.velocity, "velocity", 900, "release velocity in units/second")
	f.Float64Var(&plotFlags.from, "from", 0, "starting position")
	f.Float64Var(&plotFlags.min, "min", math.Inf(-1), "lower clamp bound")
	f.Float64Var(&plotFlags.max, "max", math.Inf(1), "upper clamp bound")
	f.DurationVar(&plotFlags.duration, "duration", 5*time.Second, "maximum simulated time")
	f.StringVar(&plotFlags.format, "format", "ascii", "output format: ascii, png or html")
	f.StringVar(&plotFlags.out, "out", "", "output file (required for png and html)")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	file, err := profile.LoadOptional(profilesDir)
	if err != nil {
		return err
	}
	behavior, err := file.Build(plotFlags.profile)
	if err != nil {
		return err
	}

	samples := simulateFling(behavior,
		plotFlags.from, plotFlags.velocity,
		motion.Range{Min: plotFlags.min, Max: plotFlags.max},
		plotFlags.duration)
	if len(samples) == 0 {
		return fmt.Errorf("the release produced no movement (velocity below the noise floor?)")
	}

	switch plotFlags.format {
	case "ascii":
		fmt.Fprintln(cmd.OutOrStdout(), trace.ASCII(samples, 12))
		s := trace.Summarize(samples)
		fmt.Fprintf(cmd.OutOrStdout(),
			"profile=%s settled=%.2f peak_velocity=%.1f duration=%s samples=%d\n",
			plotFlags.profile, s.Final, s.PeakVelocity, s.Duration.Round(time.Millisecond), len(samples))
		return nil
	case "png", "html":
		if plotFlags.out == "" {
			return fmt.Errorf("--out is required for %s output", plotFlags.format)
		}
		out, err := os.Create(plotFlags.out)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer out.Close()
		title := fmt.Sprintf("%s: release at %.0f units/s", plotFlags.profile, plotFlags.velocity)
		if plotFlags.format == "png" {
			return trace.WritePNG(out, title, samples)
		}
		return trace.WriteHTML(out, title, samples)
	default:
		return fmt.Errorf("unknown format %q", plotFlags.format)
	}
}

// simulateFling drives a position with a fake clock and manual scheduler
// so the run is reproducible: fixed 16ms steps, no wall time involved.
func simulateFling(b motion.Behavior, from, velocity float64, limits motion.Range, duration time.Duration) []trace.Sample {
	clock := motiontest.NewFakeClock()
	sched := &motiontest.ManualScheduler{}
	pos := motion.New(b, motion.WithClock(clock), motion.WithScheduler(sched.Bind))
	pos.SetLimits(limits)
	pos.SetValue(from)

	rec := trace.NewRecorder(clock)
	rec.Attach(pos)

	motiontest.Fling(pos, clock, velocity)

	const step = 16 * time.Millisecond
	deadline := clock.Now().Add(duration)
	for sched.IsRunning() && clock.Now().Before(deadline) {
		clock.Advance(step)
		sched.Fire()
	}
	return rec.Samples()
}
