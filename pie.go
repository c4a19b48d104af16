package chartkit

import (
	"math"
	"strings"
)

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)

// PieSlice is one angular sector of a pie or donut. Angles are in
// degrees with 0 at 12 o'clock, increasing clockwise; slices
// partition [start, start+360) contiguously in dataset order.
type PieSlice struct {
	Index      int
	Label      string
	Value      float64
	Percentage float64
	StartAngle float64
	EndAngle   float64
}

// CalculatePieSlices partitions the circle proportionally to the
// values, starting at startAngle. A zero total yields zero-width
// slices with zero percentages rather than NaN.
func CalculatePieSlices(values []float64, startAngle float64) []PieSlice {
	var total float64
	for _, v := range values {
		total += v
	}
	var (
		angle  = startAngle
		result = make([]PieSlice, len(values))
	)
	for i, v := range values {
		var pct, span float64
		if total > 0 {
			pct = v / total * 100
			span = v / total * fullcircle
		}
		result[i] = PieSlice{
			Index:      i,
			Value:      v,
			Percentage: pct,
			StartAngle: angle,
			EndAngle:   angle + span,
		}
		angle += span
	}
	return result
}

func (s PieSlice) MidAngle() float64 {
	return (s.StartAngle + s.EndAngle) / 2
}

// PolarToCartesian converts an angle in degrees, 0 at 12 o'clock and
// growing clockwise, to a point at distance r from (cx, cy).
func PolarToCartesian(cx, cy, r, deg float64) Point {
	rad := (deg - 90) * deg2rad
	return Point{
		X: cx + r*math.Cos(rad),
		Y: cy + r*math.Sin(rad),
	}
}

// DescribePieSlice draws a filled sector: move to the center, line to
// the arc start, arc to the end, close. Spans above 180 degrees set
// the large-arc flag.
func DescribePieSlice(cx, cy, r, startAngle, endAngle float64) string {
	var (
		str   strings.Builder
		start = PolarToCartesian(cx, cy, r, startAngle)
		end   = PolarToCartesian(cx, cy, r, endAngle)
	)
	moveTo(&str, Point{X: cx, Y: cy})
	lineTo(&str, start)
	arcTo(&str, r, endAngle-startAngle > halfcircle, true, end)
	str.WriteString(" Z")
	return str.String()
}

// DescribeDonutSlice draws an annulus sector: the outer arc forward,
// a line inward, the inner arc backward, and a closing line. The
// large-arc rule applies at both radii.
func DescribeDonutSlice(cx, cy, outer, inner, startAngle, endAngle float64) string {
	var (
		str        strings.Builder
		large      = endAngle-startAngle > halfcircle
		outerStart = PolarToCartesian(cx, cy, outer, startAngle)
		outerEnd   = PolarToCartesian(cx, cy, outer, endAngle)
		innerStart = PolarToCartesian(cx, cy, inner, startAngle)
		innerEnd   = PolarToCartesian(cx, cy, inner, endAngle)
	)
	moveTo(&str, outerStart)
	arcTo(&str, outer, large, true, outerEnd)
	lineTo(&str, innerEnd)
	arcTo(&str, inner, large, false, innerStart)
	str.WriteString(" Z")
	return str.String()
}

// ExplodeOffset is the translation that pushes an exploded slice
// outward along its mid-angle.
func ExplodeOffset(s PieSlice, distance float64) (float64, float64) {
	pt := PolarToCartesian(0, 0, distance, s.MidAngle())
	return pt.X, pt.Y
}

// SliceLabel is the render descriptor of one slice label: the text
// anchor point and, for outside labels, a connector line from just
// past the rim.
type SliceLabel struct {
	X        float64
	Y        float64
	Text     string
	Anchor   string
	Color    string
	Line     Segment
	HasLine  bool
	Baseline string
}

// OutsideSliceLabel anchors the label beyond the pie radius with a
// connector from r+5 to r+15. The text anchor flips by hemisphere so
// labels grow away from the slice.
func OutsideSliceLabel(s PieSlice, cx, cy, r float64, text string) SliceLabel {
	var (
		mid  = normAngle(s.MidAngle())
		from = PolarToCartesian(cx, cy, r+5, s.MidAngle())
		to   = PolarToCartesian(cx, cy, r+15, s.MidAngle())
		at   = PolarToCartesian(cx, cy, r+20, s.MidAngle())
		side = "end"
	)
	if mid > 0 && mid < halfcircle {
		side = "start"
	}
	return SliceLabel{
		X:        at.X,
		Y:        at.Y,
		Text:     text,
		Anchor:   side,
		Line:     Segment{X1: from.X, Y1: from.Y, X2: to.X, Y2: to.Y},
		HasLine:  true,
		Baseline: "middle",
	}
}

// InsideSliceLabel centers the label within the slice body and picks
// a contrasting text color for the slice fill. Donuts center between
// the two radii.
func InsideSliceLabel(s PieSlice, cx, cy, r, inner float64, text, fill string) SliceLabel {
	dist := r * 0.65
	if inner > 0 {
		dist = (r + inner) / 2
	}
	at := PolarToCartesian(cx, cy, dist, s.MidAngle())
	return SliceLabel{
		X:        at.X,
		Y:        at.Y,
		Text:     text,
		Anchor:   "middle",
		Color:    ContrastColor(fill),
		Baseline: "middle",
	}
}

// SliceLabelText formats the label per the configured format; slices
// too thin to read (under 3% for percent labels) return "".
func SliceLabelText(s PieSlice, label string, format LabelFormat) string {
	switch format {
	case FormatValue:
		return FormatNumber(s.Value)
	case FormatLabel:
		return label
	default:
		if s.Percentage < 3 {
			return ""
		}
		return ftoa(math.Round(s.Percentage*10)/10) + "%"
	}
}

func arcTo(str *strings.Builder, r float64, large, sweep bool, pt Point) {
	str.WriteString(" A ")
	str.WriteString(ftoa(r))
	str.WriteString(" ")
	str.WriteString(ftoa(r))
	str.WriteString(" 0 ")
	str.WriteString(flag(large))
	str.WriteString(" ")
	str.WriteString(flag(sweep))
	str.WriteString(" ")
	writePoint(str, pt)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func normAngle(deg float64) float64 {
	m := math.Mod(deg, fullcircle)
	if m < 0 {
		m += fullcircle
	}
	return m
}
