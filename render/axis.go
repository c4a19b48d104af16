package render

import (
	"github.com/chartkit/chartkit"
	"github.com/midbel/svg"
)

func drawAxis(frame chartkit.Frame) svg.Element {
	var g svg.Group
	g.Id = "axis"
	g.Append(domainLines(frame))
	for _, tick := range frame.YTicks {
		g.Append(drawTick(tick))
	}
	for _, tick := range frame.XTicks {
		g.Append(drawTick(tick))
	}
	return g.AsElement()
}

// domainLines draws the two axis lines along the chart area edges.
func domainLines(frame chartkit.Frame) svg.Element {
	var (
		g      svg.Group
		ar     = frame.Area
		bottom = ar.Y + ar.Height
		stroke = svg.NewStroke("black", 1)
	)
	left := svg.NewLine(svg.NewPos(ar.X, ar.Y), svg.NewPos(ar.X, bottom))
	left.Stroke = stroke
	g.Append(left.AsElement())

	base := svg.NewLine(svg.NewPos(ar.X, bottom), svg.NewPos(ar.X+ar.Width, bottom))
	base.Stroke = stroke
	g.Append(base.AsElement())
	return g.AsElement()
}

// drawTick renders one tick descriptor: a faint gridline across the
// area, a short mark outside it, and the label.
func drawTick(tick chartkit.Tick) svg.Element {
	var g svg.Group

	sk := svg.NewStroke("black", 1)
	sk.Opacity = 0.1
	grid := segment(tick.GridLine)
	grid.Stroke = sk
	g.Append(grid.AsElement())

	mark := segment(tick.Mark)
	mark.Stroke = svg.NewStroke("black", 1)
	g.Append(mark.AsElement())

	tx := svg.NewText(tick.Label.Text)
	tx.Pos = svg.NewPos(tick.Label.X, tick.Label.Y)
	tx.Font = svg.NewFont(FontSize)
	tx.Anchor = tick.Label.Anchor
	tx.Baseline = tick.Label.Baseline
	g.Append(tx.AsElement())

	return g.AsElement()
}

func segment(s chartkit.Segment) svg.Line {
	return svg.NewLine(svg.NewPos(s.X1, s.Y1), svg.NewPos(s.X2, s.Y2))
}
