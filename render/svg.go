package render

import (
	"bufio"
	"io"

	"github.com/chartkit/chartkit"
	"github.com/midbel/svg"
)

const FontSize = 12.0

// Chart writes the frame as a complete SVG document. Empty and
// invalid frames render a centered diagnostic message instead of
// geometry; neither is an error.
func Chart(w io.Writer, frame chartkit.Frame) error {
	var el svg.SVG
	el.Dim = svg.NewDim(frame.Width, frame.Height)
	el.OmitProlog = true

	switch frame.State {
	case chartkit.StateEmpty:
		el.Append(message(frame, "No data to display"))
	case chartkit.StateInvalid:
		el.Append(message(frame, "Invalid chart data"))
	default:
		if frame.Kind != chartkit.KindPie {
			el.Append(drawAxis(frame))
		}
		el.Append(drawSeries(frame))
		if len(frame.Legend) > 0 {
			el.Append(drawLegend(frame))
		}
	}

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func drawSeries(frame chartkit.Frame) svg.Element {
	switch frame.Kind {
	case chartkit.KindPie:
		return drawSlices(frame)
	case chartkit.KindBar:
		return drawBars(frame)
	default:
		return drawLines(frame)
	}
}

func drawBars(frame chartkit.Frame) svg.Element {
	var grp svg.Group
	grp.Class = append(grp.Class, "bars")
	for _, b := range frame.Bars {
		var el svg.Rect
		el.Title = b.Label
		el.Pos = svg.NewPos(b.X, b.Y)
		el.Dim = svg.NewDim(b.Width, b.Height)
		el.Fill = svg.NewFill(b.Color)
		grp.Append(el.AsElement())
	}
	return grp.AsElement()
}

func drawLines(frame chartkit.Frame) svg.Element {
	var grp svg.Group
	grp.Class = append(grp.Class, "lines")
	for _, line := range frame.Lines {
		grp.Append(drawLine(frame, line))
	}
	return grp.AsElement()
}

func drawLine(frame chartkit.Frame, line chartkit.LineGeom) svg.Element {
	var g svg.Group
	g.Id = line.Label
	g.Class = append(g.Class, "line")

	if line.AreaPath != "" {
		g.Append(areaPath(frame, line))
	}

	pat := linePath(line)
	pat.Stroke = svg.NewStroke(line.BorderColor, line.BorderWidth)
	if len(line.BorderDash) > 0 {
		pat.Stroke.DashArray = dashes(line.BorderDash)
	}
	pat.Fill = svg.NewFill("none")
	g.Append(pat.AsElement())

	if line.ShowPoints {
		for _, pt := range line.Points {
			g.Append(pointMark(pt, line.PointRadius, line.BorderColor))
		}
	}
	return g.AsElement()
}

// linePath replays the line geometry through the svg path builder:
// straight segments, or the precomputed spline control points.
func linePath(line chartkit.LineGeom) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	if len(line.Points) == 0 {
		return pat
	}
	pat.AbsMoveTo(pos(line.Points[0]))
	if line.Smooth {
		for _, seg := range chartkit.SplineSegments(line.Points, line.Tension) {
			pat.AbsCubicCurve(pos(seg.To), pos(seg.CP1), pos(seg.CP2))
		}
	} else {
		for _, pt := range line.Points[1:] {
			pat.AbsLineTo(pos(pt))
		}
	}
	return pat
}

func areaPath(frame chartkit.Frame, line chartkit.LineGeom) svg.Element {
	var (
		pat      = linePath(line)
		baseline = frame.Area.Y + frame.Area.Height
		first    = line.Points[0]
		last     = line.Points[len(line.Points)-1]
	)
	pat.AbsLineTo(svg.NewPos(last.X, baseline))
	pat.AbsLineTo(svg.NewPos(first.X, baseline))
	pat.ClosePath()
	pat.Stroke = svg.NewStroke("none", 0)
	pat.Fill = svg.NewFill(line.Color)
	pat.Fill.Opacity = 0.3
	return pat.AsElement()
}

func drawSlices(frame chartkit.Frame) svg.Element {
	var grp svg.Group
	grp.Class = append(grp.Class, "pie")
	for _, s := range frame.Slices {
		grp.Append(drawSlice(frame, s))
		if s.Text.Text != "" {
			grp.Append(sliceLabel(s.Text))
		}
	}
	return grp.AsElement()
}

func drawSlice(frame chartkit.Frame, s chartkit.SliceGeom) svg.Element {
	var (
		pat   svg.Path
		cx    = frame.Pie.CX + s.OffsetX
		cy    = frame.Pie.CY + s.OffsetY
		outer = frame.Pie.R
		inner = frame.Pie.Inner
		large = s.EndAngle-s.StartAngle > 180
	)
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill(s.Color)
	if inner > 0 {
		pat.AbsMoveTo(polar(cx, cy, outer, s.StartAngle))
		pat.AbsArcTo(polar(cx, cy, outer, s.EndAngle), outer, outer, 0, large, true)
		pat.AbsLineTo(polar(cx, cy, inner, s.EndAngle))
		pat.AbsArcTo(polar(cx, cy, inner, s.StartAngle), inner, inner, 0, large, false)
	} else {
		pat.AbsMoveTo(svg.NewPos(cx, cy))
		pat.AbsLineTo(polar(cx, cy, outer, s.StartAngle))
		pat.AbsArcTo(polar(cx, cy, outer, s.EndAngle), outer, outer, 0, large, true)
	}
	pat.ClosePath()
	return pat.AsElement()
}

func sliceLabel(label chartkit.SliceLabel) svg.Element {
	var g svg.Group
	if label.HasLine {
		li := svg.NewLine(svg.NewPos(label.Line.X1, label.Line.Y1), svg.NewPos(label.Line.X2, label.Line.Y2))
		li.Stroke = svg.NewStroke("#999999", 1)
		g.Append(li.AsElement())
	}
	tx := svg.NewText(label.Text)
	tx.Pos = svg.NewPos(label.X, label.Y)
	tx.Font = svg.NewFont(FontSize)
	tx.Anchor = label.Anchor
	tx.Baseline = label.Baseline
	if label.Color != "" {
		g.Fill = svg.NewFill(label.Color)
	}
	g.Append(tx.AsElement())
	return g.AsElement()
}

func message(frame chartkit.Frame, str string) svg.Element {
	tx := svg.NewText(str)
	tx.Pos = svg.NewPos(frame.Width/2, frame.Height/2)
	tx.Font = svg.NewFont(FontSize * 1.2)
	tx.Anchor = "middle"
	tx.Baseline = "middle"
	return tx.AsElement()
}

func dashes(list []float64) []int {
	out := make([]int, len(list))
	for i, d := range list {
		out[i] = int(d)
	}
	return out
}

func pos(pt chartkit.Point) svg.Pos {
	return svg.NewPos(pt.X, pt.Y)
}

func polar(cx, cy, r, deg float64) svg.Pos {
	return pos(chartkit.PolarToCartesian(cx, cy, r, deg))
}
