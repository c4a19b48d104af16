package chartkit

const (
	FontSize = 12.0

	tickSize    = FontSize * 0.5
	labelOffset = FontSize * 1.2
)

// Segment is a straight line in pixel space.
type Segment struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

type TickLabel struct {
	X        float64
	Y        float64
	Text     string
	Anchor   string
	Baseline string
}

// Tick is the render descriptor of one axis position: a gridline
// across the chart area, a short mark outside it, and a label.
type Tick struct {
	Value    float64
	GridLine Segment
	Mark     Segment
	Label    TickLabel
}

// YTicks emits one tick per scale step, bottom to top, with
// horizontal gridlines and right-aligned labels left of the axis.
// A nil format falls back to FormatNumber.
func YTicks(scale NiceScale, area ChartArea, format func(float64) string) []Tick {
	if format == nil {
		format = func(v float64) string {
			return FormatNumber(v)
		}
	}
	var all []Tick
	for _, v := range scale.Values() {
		y := scale.ValueToY(v, area)
		all = append(all, Tick{
			Value: v,
			GridLine: Segment{
				X1: area.X,
				Y1: y,
				X2: area.X + area.Width,
				Y2: y,
			},
			Mark: Segment{
				X1: area.X - tickSize,
				Y1: y,
				X2: area.X,
				Y2: y,
			},
			Label: TickLabel{
				X:        area.X - tickSize - 2,
				Y:        y,
				Text:     format(v),
				Anchor:   "end",
				Baseline: "middle",
			},
		})
	}
	return all
}

// XTicks emits one tick per label, placed per the axis alignment,
// with vertical gridlines and labels below the axis.
func XTicks(labels []string, area ChartArea, align Alignment) []Tick {
	var (
		bottom = area.Y + area.Height
		all    = make([]Tick, 0, len(labels))
	)
	for i, text := range labels {
		x := PointX(area, len(labels), i, align)
		all = append(all, Tick{
			Value: float64(i),
			GridLine: Segment{
				X1: x,
				Y1: area.Y,
				X2: x,
				Y2: bottom,
			},
			Mark: Segment{
				X1: x,
				Y1: bottom,
				X2: x,
				Y2: bottom + tickSize,
			},
			Label: TickLabel{
				X:        x,
				Y:        bottom + labelOffset,
				Text:     text,
				Anchor:   "middle",
				Baseline: "hanging",
			},
		})
	}
	return all
}
