package trace_test

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/kinetic/pkg/motion"
	"github.com/go-drift/kinetic/pkg/motiontest"
	"github.com/go-drift/kinetic/pkg/trace"
)

func recordedFling(t *testing.T) []trace.Sample {
	t.Helper()
	clock := motiontest.NewFakeClock()
	sched := &motiontest.ManualScheduler{}
	pos := motion.New(motion.NewMomentum(),
		motion.WithClock(clock),
		motion.WithScheduler(sched.Bind),
	)
	rec := trace.NewRecorder(clock)
	rec.Attach(pos)

	motiontest.Fling(pos, clock, 300)
	sched.RunUntilStopped(clock, 16*time.Millisecond, 1000)
	rec.Detach()

	samples := rec.Samples()
	require.NotEmpty(t, samples)
	return samples
}

func TestRecorderCapturesChanges(t *testing.T) {
	clock := motiontest.NewFakeClock()
	sched := &motiontest.ManualScheduler{}
	pos := motion.New(motion.NewMomentum(),
		motion.WithClock(clock),
		motion.WithScheduler(sched.Bind),
	)
	rec := trace.NewRecorder(clock)
	rec.Attach(pos)

	pos.SetValue(10)
	clock.Advance(50 * time.Millisecond)
	pos.SetValue(10) // no change, no sample
	pos.SetValue(20)

	want := []trace.Sample{
		{At: 0, Value: 10},
		{At: 50 * time.Millisecond, Value: 20},
	}
	if diff := cmp.Diff(want, rec.Samples()); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}

	rec.Detach()
	pos.SetValue(30)
	assert.Len(t, rec.Samples(), 2, "detached recorder must not grow")
}

func TestRecorderReset(t *testing.T) {
	clock := motiontest.NewFakeClock()
	pos := motion.New(motion.NewMomentum(), motion.WithClock(clock),
		motion.WithScheduler((&motiontest.ManualScheduler{}).Bind))
	rec := trace.NewRecorder(clock)
	rec.Attach(pos)

	pos.SetValue(1)
	clock.Advance(time.Second)
	rec.Reset()
	pos.SetValue(2)

	require.Len(t, rec.Samples(), 1)
	assert.Equal(t, time.Duration(0), rec.Samples()[0].At, "Reset should restart the timeline")
}

func TestSummarize(t *testing.T) {
	samples := []trace.Sample{
		{At: 0, Value: 0},
		{At: 100 * time.Millisecond, Value: 10},
		{At: 200 * time.Millisecond, Value: 4},
	}
	got := trace.Summarize(samples)

	assert.Equal(t, 0.0, got.Min)
	assert.Equal(t, 10.0, got.Max)
	assert.Equal(t, 4.0, got.Final)
	assert.InDelta(t, 14.0/3, got.Mean, 1e-9)
	assert.InDelta(t, 100.0, got.PeakVelocity, 1e-9, "10 units over 100ms")
	assert.Equal(t, 200*time.Millisecond, got.Duration)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, trace.Summary{}, trace.Summarize(nil))
}

func TestASCII(t *testing.T) {
	out := trace.ASCII(recordedFling(t), 8)
	require.NotEmpty(t, out)
	assert.True(t, strings.Contains(out, "position over ticks"))

	assert.Empty(t, trace.ASCII(nil, 8))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, trace.WritePNG(&buf, "fling", recordedFling(t)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.False(t, img.Bounds().Empty())
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, trace.WriteHTML(&buf, "fling trajectory", recordedFling(t)))
	assert.Contains(t, buf.String(), "fling trajectory")
}

func TestThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 640, 320))
	got := trace.Thumbnail(src, 64, 32)
	assert.Equal(t, image.Rect(0, 0, 64, 32), got.Bounds())
}
