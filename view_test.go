package chartkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func quarterData() ChartData {
	return ChartData{
		Labels: []string{"Q1", "Q2", "Q3", "Q4"},
		Datasets: []Dataset{
			{Data: []float64{30, 40, 35, 50}},
		},
	}
}

func TestViewBarFrame(t *testing.T) {
	opts := DefaultOptions()
	opts.BeginAtZero = true

	view := NewView(KindBar, quarterData(), opts)
	view.Resize(800, 400)
	frame := view.Frame()

	require.Equal(t, StateOK, frame.State)
	require.EqualValues(t, 800, frame.Width)
	require.EqualValues(t, 400, frame.Height)
	require.LessOrEqual(t, frame.Scale.Min, 0.0)
	require.GreaterOrEqual(t, frame.Scale.Max, 50.0)

	require.Len(t, frame.Bars, 4)
	var tallest BarRect
	for _, b := range frame.Bars {
		if b.Height > tallest.Height {
			tallest = b
		}
	}
	require.EqualValues(t, 50, tallest.Value)
	require.Equal(t, "Q4", tallest.Label)

	require.Len(t, frame.XTicks, 4)
	require.Len(t, frame.YTicks, frame.Scale.Ticks)
	require.Len(t, frame.Legend, 1)
}

func TestViewEmptyAndInvalid(t *testing.T) {
	view := NewView(KindBar, ChartData{}, DefaultOptions())
	require.Equal(t, StateEmpty, view.Frame().State)

	view.SetData(ChartData{
		Labels:   []string{"a", "b"},
		Datasets: []Dataset{{Data: []float64{1}}},
	})
	frame := view.Frame()
	require.Equal(t, StateInvalid, frame.State)
	require.Empty(t, frame.Bars)
}

func TestViewToggleReshapesScale(t *testing.T) {
	data := ChartData{
		Labels: []string{"a", "b"},
		Datasets: []Dataset{
			{Data: []float64{1, 2}},
			{Data: []float64{100, 200}},
		},
	}
	view := NewView(KindBar, data, DefaultOptions())
	view.Resize(600, 300)

	before := view.Frame()
	require.GreaterOrEqual(t, before.Scale.Max, 200.0)
	require.Len(t, before.Bars, 4)

	ev := view.Toggle(1)
	require.Equal(t, LegendToggle{Index: 1, Disabled: true}, ev)

	after := view.Frame()
	require.Less(t, after.Scale.Max, 100.0)
	require.Len(t, after.Bars, 2)
	require.Equal(t, 0, after.Bars[0].DatasetIndex)
	require.True(t, after.Legend[1].Disabled)

	// toggling back restores the original geometry
	view.Toggle(1)
	restored := view.Frame()
	require.Equal(t, before.Scale, restored.Scale)
	require.Len(t, restored.Bars, 4)
}

func TestViewLegendHidden(t *testing.T) {
	opts := DefaultOptions()
	opts.Legend.Show = false

	view := NewView(KindBar, quarterData(), opts)
	view.Resize(600, 300)
	frame := view.Frame()

	require.Equal(t, StateOK, frame.State)
	require.Len(t, frame.Bars, 4)
	require.Empty(t, frame.Legend)

	// pie legends obey the same switch
	pie := NewView(KindPie, quarterData(), opts)
	pie.Resize(400, 400)
	require.Empty(t, pie.Frame().Legend)
	require.Len(t, pie.Frame().Slices, 4)
}

func TestViewLineExplicitZeroTension(t *testing.T) {
	var (
		zero = 0.0
		data = ChartData{
			Labels: []string{"a", "b", "c", "d"},
			Datasets: []Dataset{
				{Data: []float64{1, 3, 2, 4}, Tension: &zero},
			},
		}
		opts = DefaultOptions()
	)
	opts.Line.Smooth = true

	view := NewView(KindLine, data, opts)
	view.Resize(600, 300)
	frame := view.Frame()

	// per-dataset tension zero keeps the line straight even when
	// global smoothing is on
	line := frame.Lines[0]
	require.False(t, line.Smooth)
	require.NotContains(t, line.Path, " C ")
}

func TestViewLineFrame(t *testing.T) {
	opts := DefaultOptions()
	opts.BeginAtZero = true
	opts.Line.Smooth = true

	view := NewView(KindLine, quarterData(), opts)
	view.Resize(800, 400)
	frame := view.Frame()

	require.Len(t, frame.Lines, 1)
	line := frame.Lines[0]
	require.Len(t, line.Points, 4)
	require.True(t, line.Smooth)
	require.Contains(t, line.Path, " C ")
	require.Empty(t, line.AreaPath)
}

func TestViewAreaFrame(t *testing.T) {
	view := NewView(KindArea, quarterData(), DefaultOptions())
	view.Resize(800, 400)
	frame := view.Frame()

	require.Len(t, frame.Lines, 1)
	require.NotEmpty(t, frame.Lines[0].AreaPath)
	require.Contains(t, frame.Lines[0].AreaPath, " Z")
}

func TestViewPieFrame(t *testing.T) {
	var (
		data = ChartData{
			Labels: []string{"a", "b", "c"},
			Datasets: []Dataset{
				{Data: []float64{10, 20, 70}},
			},
		}
		opts = DefaultOptions()
	)
	view := NewView(KindPie, data, opts)
	view.Resize(400, 400)
	frame := view.Frame()

	require.Len(t, frame.Slices, 3)
	require.Greater(t, frame.Pie.R, 0.0)
	require.EqualValues(t, 0, frame.Pie.Inner)

	var pct float64
	for _, s := range frame.Slices {
		pct += s.Percentage
		require.NotEmpty(t, s.Path)
	}
	require.InDelta(t, 100, pct, 1e-9)

	// pie legend lists labels, not datasets
	require.Len(t, frame.Legend, 3)
	require.Equal(t, "a", frame.Legend[0].Label)

	opts.Donut = true
	view.SetOptions(opts)
	donut := view.Frame()
	require.Greater(t, donut.Pie.Inner, 0.0)
}

func TestViewPieStartAngleDefaults(t *testing.T) {
	data := ChartData{
		Labels:   []string{"a", "b"},
		Datasets: []Dataset{{Data: []float64{25, 75}}},
	}

	// a zero-value Options still starts the pie at the default angle
	view := NewView(KindPie, data, Options{})
	view.Resize(400, 400)
	frame := view.Frame()
	require.EqualValues(t, DefaultStartAngle, frame.Slices[0].StartAngle)

	// an explicit zero starts at 12 o'clock
	var (
		zero = 0.0
		opts = DefaultOptions()
	)
	opts.StartAngle = &zero
	view.SetOptions(opts)
	frame = view.Frame()
	require.Zero(t, frame.Slices[0].StartAngle)
	require.EqualValues(t, 90, frame.Slices[0].EndAngle)
}

func TestViewFrameCaching(t *testing.T) {
	view := NewView(KindBar, quarterData(), DefaultOptions())
	view.Resize(600, 300)

	a := view.Frame()
	b := view.Frame()
	require.Equal(t, a, b)

	view.Resize(900, 300)
	c := view.Frame()
	require.NotEqual(t, a.Width, c.Width)
}

func TestDebouncer(t *testing.T) {
	got := make(chan [2]float64, 8)
	deb := NewDebouncer(20*time.Millisecond, func(w, h float64) {
		got <- [2]float64{w, h}
	})
	defer deb.Stop()

	deb.Observe(100, 100)
	deb.Observe(200, 150)
	deb.Observe(300, 200)

	select {
	case size := <-got:
		// only the latest size survives the window
		require.Equal(t, [2]float64{300, 200}, size)
	case <-time.After(time.Second):
		t.Fatal("debouncer never fired")
	}

	select {
	case size := <-got:
		t.Fatalf("superseded resize delivered: %v", size)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDebouncerStop(t *testing.T) {
	fired := make(chan struct{}, 1)
	deb := NewDebouncer(10*time.Millisecond, func(w, h float64) {
		fired <- struct{}{}
	})
	deb.Observe(100, 100)
	deb.Stop()

	select {
	case <-fired:
		t.Fatal("stopped debouncer fired")
	case <-time.After(50 * time.Millisecond):
	}
}
