package chartkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHitBar(t *testing.T) {
	frame := Frame{
		Bars: []BarRect{
			{X: 10, Y: 50, Width: 40, Height: 100, Label: "a", DatasetIndex: 0, Value: 30},
			{X: 60, Y: 20, Width: 40, Height: 130, Label: "b", DatasetIndex: 1, Value: 45},
		},
	}

	hit, ok := HitBar(frame, 30, 100)
	require.True(t, ok)
	require.Equal(t, BarClick{Label: "a", DatasetIndex: 0, Value: 30}, hit)

	hit, ok = HitBar(frame, 80, 25)
	require.True(t, ok)
	require.Equal(t, "b", hit.Label)

	_, ok = HitBar(frame, 500, 500)
	require.False(t, ok)
}

func TestHitPoint(t *testing.T) {
	frame := Frame{
		Labels: []string{"a", "b"},
		Lines: []LineGeom{
			{
				DatasetIndex: 0,
				Points:       []Point{{X: 100, Y: 100}, {X: 200, Y: 50}},
				Values:       []float64{10, 20},
				PointRadius:  3,
			},
		},
	}

	hit, ok := HitPoint(frame, 201, 51, 0)
	require.True(t, ok)
	require.Equal(t, "b", hit.Label)
	require.EqualValues(t, 20, hit.Value)

	// outside the grab radius
	_, ok = HitPoint(frame, 150, 75, 0)
	require.False(t, ok)

	// explicit tolerance widens the search
	hit, ok = HitPoint(frame, 150, 75, 60)
	require.True(t, ok)
	require.Equal(t, 0, hit.DatasetIndex)
}

func TestHitSlice(t *testing.T) {
	var (
		slices = CalculatePieSlices([]float64{25, 75}, DefaultStartAngle)
		frame  = Frame{
			Labels: []string{"a", "b"},
			Pie:    PieGeom{CX: 100, CY: 100, R: 50},
		}
	)
	for _, s := range slices {
		frame.Slices = append(frame.Slices, SliceGeom{PieSlice: s})
	}

	// a point inside the first slice, between -90 and 0 degrees
	pt := PolarToCartesian(100, 100, 30, -45)
	hit, ok := HitSlice(frame, pt.X, pt.Y)
	require.True(t, ok)
	require.Equal(t, 0, hit.Index)
	require.Equal(t, "a", hit.Label)
	require.EqualValues(t, 25, hit.Percentage)

	// a point in the second slice
	pt = PolarToCartesian(100, 100, 30, 120)
	hit, ok = HitSlice(frame, pt.X, pt.Y)
	require.True(t, ok)
	require.Equal(t, 1, hit.Index)

	// outside the radius
	_, ok = HitSlice(frame, 100, 20)
	require.False(t, ok)

	// inside the donut hole
	frame.Pie.Inner = 35
	_, ok = HitSlice(frame, pt.X, pt.Y)
	require.False(t, ok)
}
