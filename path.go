package chartkit

import (
	"strings"

	"github.com/midbel/slices"
)

// Point is a position in SVG pixel space.
type Point struct {
	X float64
	Y float64
}

// LinePoints maps dataset values into pixel points within the chart
// area, one per label slot.
func LinePoints(values []float64, scale NiceScale, area ChartArea, align Alignment) []Point {
	pts := make([]Point, len(values))
	for i, v := range values {
		pts[i] = Point{
			X: PointX(area, len(values), i, align),
			Y: scale.ValueToY(v, area),
		}
	}
	return pts
}

// LinePath builds a polyline path through the points. A single point
// yields a bare move command, no points an empty string.
func LinePath(pts []Point) string {
	if len(pts) == 0 {
		return ""
	}
	var str strings.Builder
	moveTo(&str, slices.Fst(pts))
	for _, pt := range slices.Rest(pts) {
		lineTo(&str, pt)
	}
	return str.String()
}

// CurveSegment is one cubic Bezier segment of a smoothed line.
type CurveSegment struct {
	CP1 Point
	CP2 Point
	To  Point
}

// SplineSegments computes the cardinal spline segments through the
// points, one per consecutive pair. For the pair (p1, p2) and its
// neighbors (p0, p3), clamped at the ends,
//
//	cp1 = p1 + (p2-p0)/6 * tension
//	cp2 = p2 - (p3-p1)/6 * tension
func SplineSegments(pts []Point, tension float64) []CurveSegment {
	if len(pts) < 2 {
		return nil
	}
	segs := make([]CurveSegment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		var (
			p0 = pts[maxInt(i-1, 0)]
			p1 = pts[i]
			p2 = pts[i+1]
			p3 = pts[minInt(i+2, len(pts)-1)]
		)
		segs = append(segs, CurveSegment{
			CP1: Point{
				X: p1.X + (p2.X-p0.X)/6*tension,
				Y: p1.Y + (p2.Y-p0.Y)/6*tension,
			},
			CP2: Point{
				X: p2.X - (p3.X-p1.X)/6*tension,
				Y: p2.Y - (p3.Y-p1.Y)/6*tension,
			},
			To: p2,
		})
	}
	return segs
}

// SmoothPath approximates a cardinal spline through the points with
// one cubic segment per point pair. Tension 0 degrades to the
// straight polyline.
func SmoothPath(pts []Point, tension float64) string {
	if len(pts) < 3 || tension == 0 {
		return LinePath(pts)
	}
	var str strings.Builder
	moveTo(&str, slices.Fst(pts))
	for _, seg := range SplineSegments(pts, tension) {
		curveTo(&str, seg.CP1, seg.CP2, seg.To)
	}
	return str.String()
}

// AreaPath extends the line (or spline) path with two segments down
// to the chart baseline, then closes, producing a fillable region.
func AreaPath(pts []Point, area ChartArea, smooth bool, tension float64) string {
	if len(pts) == 0 {
		return ""
	}
	var line string
	if smooth {
		line = SmoothPath(pts, tension)
	} else {
		line = LinePath(pts)
	}
	var (
		str      strings.Builder
		baseline = area.Y + area.Height
	)
	str.WriteString(line)
	lineTo(&str, Point{X: slices.Lst(pts).X, Y: baseline})
	lineTo(&str, Point{X: slices.Fst(pts).X, Y: baseline})
	str.WriteString(" Z")
	return str.String()
}

func moveTo(str *strings.Builder, pt Point) {
	str.WriteString("M ")
	writePoint(str, pt)
}

func lineTo(str *strings.Builder, pt Point) {
	str.WriteString(" L ")
	writePoint(str, pt)
}

func curveTo(str *strings.Builder, cp1, cp2, pt Point) {
	str.WriteString(" C ")
	writePoint(str, cp1)
	str.WriteString(", ")
	writePoint(str, cp2)
	str.WriteString(", ")
	writePoint(str, pt)
}

func writePoint(str *strings.Builder, pt Point) {
	str.WriteString(ftoa(pt.X))
	str.WriteString(" ")
	str.WriteString(ftoa(pt.Y))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
