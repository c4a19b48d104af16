package chartkit

import "math"

// Interaction payloads emitted to the host when it maps pointer
// positions through a Frame.

type BarClick struct {
	Label        string
	DatasetIndex int
	Value        float64
}

type PointClick struct {
	Label        string
	DatasetIndex int
	Value        float64
	X            float64
	Y            float64
}

type SliceClick struct {
	Label      string
	Value      float64
	Percentage float64
	Index      int
}

type LegendToggle struct {
	Index    int
	Disabled bool
}

// HitBar finds the bar under (x, y). Later bars win when stacked
// segments touch, matching paint order.
func HitBar(frame Frame, x, y float64) (BarClick, bool) {
	for i := len(frame.Bars) - 1; i >= 0; i-- {
		b := frame.Bars[i]
		if x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height {
			return BarClick{
				Label:        b.Label,
				DatasetIndex: b.DatasetIndex,
				Value:        b.Value,
			}, true
		}
	}
	return BarClick{}, false
}

// HitPoint finds the nearest data point within tolerance pixels of
// (x, y); tolerance 0 uses each point's radius plus a small grab
// margin.
func HitPoint(frame Frame, x, y, tolerance float64) (PointClick, bool) {
	var (
		best     PointClick
		bestDist = math.Inf(1)
		found    bool
	)
	for _, line := range frame.Lines {
		limit := tolerance
		if limit <= 0 {
			limit = line.PointRadius + 2
		}
		for i, pt := range line.Points {
			d := math.Hypot(pt.X-x, pt.Y-y)
			if d > limit || d >= bestDist {
				continue
			}
			bestDist = d
			found = true
			best = PointClick{
				Label:        frame.Labels[i],
				DatasetIndex: line.DatasetIndex,
				Value:        line.Values[i],
				X:            pt.X,
				Y:            pt.Y,
			}
		}
	}
	return best, found
}

// HitSlice finds the slice whose sector contains (x, y), honoring
// the donut hole and per-slice explode offsets.
func HitSlice(frame Frame, x, y float64) (SliceClick, bool) {
	for _, s := range frame.Slices {
		var (
			dx   = x - (frame.Pie.CX + s.OffsetX)
			dy   = y - (frame.Pie.CY + s.OffsetY)
			dist = math.Hypot(dx, dy)
		)
		if dist > frame.Pie.R || dist < frame.Pie.Inner {
			continue
		}
		// pointer angle in the slice convention: 0 at 12 o'clock,
		// clockwise positive
		deg := math.Atan2(dy, dx)/deg2rad + 90
		span := s.EndAngle - s.StartAngle
		if span <= 0 {
			continue
		}
		if rel := normAngle(deg - s.StartAngle); rel < span {
			label := ""
			if s.Index < len(frame.Labels) {
				label = frame.Labels[s.Index]
			}
			return SliceClick{
				Label:      label,
				Value:      s.Value,
				Percentage: s.Percentage,
				Index:      s.Index,
			}, true
		}
	}
	return SliceClick{}, false
}
