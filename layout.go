package chartkit

import "math"

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// ChartArea is the drawable rectangle left after padding.
type ChartArea struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewChartArea(totalWidth, totalHeight float64, pad Padding) ChartArea {
	return ChartArea{
		X:      pad.Left,
		Y:      pad.Top,
		Width:  totalWidth - pad.Horizontal(),
		Height: totalHeight - pad.Vertical(),
	}
}

// ResolveSize turns the container dimensions and sizing options into
// the final SVG dimensions. Responsive charts take the container
// width and derive height from the aspect ratio when maintained,
// clamped so the chart never exceeds the available vertical space.
// Non-responsive charts use the explicit size, default 600x300.
func ResolveSize(containerWidth, containerHeight float64, opts Options) (float64, float64) {
	opts = opts.withDefaults()
	if !opts.Responsive {
		w, h := opts.Width, opts.Height
		if w <= 0 {
			w = DefaultWidth
		}
		if h <= 0 {
			h = DefaultHeight
		}
		return w, h
	}
	width := containerWidth
	if width <= 0 {
		width = DefaultWidth
	}
	height := containerHeight
	if opts.MaintainAspectRatio {
		height = width / opts.AspectRatio
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if containerHeight > 0 && height > containerHeight {
		height = containerHeight
	}
	return width, height
}

// GroupWidth is the horizontal slot owned by one label.
func GroupWidth(area ChartArea, labels int) float64 {
	if labels == 0 {
		return 0
	}
	return area.Width / float64(labels)
}

// CalculateBarWidth divides width into count slots and keeps
// (1-gapRatio) of each slot for the bar itself.
func CalculateBarWidth(width float64, count int, gapRatio float64) float64 {
	if count == 0 {
		return 0
	}
	return width / float64(count) * (1 - gapRatio)
}

// PointX places category point i of n on the X axis. Flush spreads
// the points edge to edge over n-1 equal intervals (a single point
// sits in the middle); Centered puts each point at the center of its
// 1/n segment.
func PointX(area ChartArea, n, i int, align Alignment) float64 {
	if n <= 0 {
		return area.X
	}
	if align == AlignFlush {
		if n == 1 {
			return area.X + area.Width/2
		}
		return area.X + area.Width*float64(i)/float64(n-1)
	}
	seg := area.Width / float64(n)
	return area.X + seg*(float64(i)+0.5)
}

// BarRect is the renderable geometry of one bar or stacked segment.
type BarRect struct {
	X            float64
	Y            float64
	Width        float64
	Height       float64
	Label        string
	LabelIndex   int
	DatasetIndex int
	Value        float64
	Color        string
}

// GroupedBars lays visible datasets side by side inside each label
// slot, the block of bars centered within the slot.
func GroupedBars(data ChartData, scale NiceScale, area ChartArea, gapRatio float64) []BarRect {
	var (
		labels = len(data.Labels)
		sets   = len(data.Datasets)
		bars   = make([]BarRect, 0, labels*sets)
	)
	if labels == 0 || sets == 0 {
		return bars
	}
	var (
		group    = GroupWidth(area, labels)
		barWidth = CalculateBarWidth(group, sets, gapRatio)
		padding  = (group - barWidth*float64(sets)) / 2
		zeroY    = scale.ValueToY(clamp(0, scale.Min, scale.Max), area)
	)
	for li := 0; li < labels; li++ {
		start := area.X + group*float64(li) + padding
		for di, set := range data.Datasets {
			v := set.Data[li]
			y := scale.ValueToY(v, area)
			bars = append(bars, BarRect{
				X:            start + barWidth*float64(di),
				Y:            math.Min(y, zeroY),
				Width:        barWidth,
				Height:       math.Abs(zeroY - y),
				Label:        data.Labels[li],
				LabelIndex:   li,
				DatasetIndex: di,
				Value:        v,
				Color:        set.BackgroundColor.At(li),
			})
		}
	}
	return bars
}

// StackedBars stacks one segment per dataset on a single centered bar
// per label. Only positive values are stacked; zero and negative
// values are skipped rather than stacked below the baseline.
func StackedBars(data ChartData, scale NiceScale, area ChartArea, gapRatio float64) []BarRect {
	var (
		labels = len(data.Labels)
		bars   []BarRect
	)
	if labels == 0 || len(data.Datasets) == 0 {
		return bars
	}
	var (
		group    = GroupWidth(area, labels)
		barWidth = group * (1 - gapRatio)
	)
	for li := 0; li < labels; li++ {
		var (
			x     = area.X + group*float64(li) + (group-barWidth)/2
			total float64
		)
		for di, set := range data.Datasets {
			v := set.Data[li]
			if v <= 0 {
				continue
			}
			// cumulative offsets clamped to the scale domain so a
			// scale starting above zero never pushes the first
			// segment outside the chart area
			var (
				top    = scale.ValueToY(clamp(total+v, scale.Min, scale.Max), area)
				bottom = scale.ValueToY(clamp(total, scale.Min, scale.Max), area)
			)
			bars = append(bars, BarRect{
				X:            x,
				Y:            top,
				Width:        barWidth,
				Height:       bottom - top,
				Label:        data.Labels[li],
				LabelIndex:   li,
				DatasetIndex: di,
				Value:        v,
				Color:        set.BackgroundColor.At(li),
			})
			total += v
		}
	}
	return bars
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
