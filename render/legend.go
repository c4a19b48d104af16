package render

import (
	"github.com/chartkit/chartkit"
	"github.com/midbel/svg"
)

// drawLegend stacks one swatch+label row per entry in the top right
// corner of the chart. Disabled entries are dimmed.
func drawLegend(frame chartkit.Frame) svg.Element {
	var (
		offset = FontSize * 1.4
		width  float64
		grp    svg.Group
	)
	for _, item := range frame.Legend {
		if n := float64(len(item.Label)); n > width {
			width = n
		}
	}
	width = width*FontSize*0.6 + 30

	for i, item := range frame.Legend {
		var g svg.Group
		g.Transform = svg.Translate(0, float64(i)*offset)

		var sw svg.Rect
		sw.Pos = svg.NewPos(0, -FontSize*0.75)
		sw.Dim = svg.NewDim(FontSize, FontSize)
		sw.Fill = svg.NewFill(item.Color)
		if item.Disabled {
			sw.Fill.Opacity = 0.25
		}
		g.Append(sw.AsElement())

		tx := svg.NewText(item.Label)
		tx.Pos = svg.NewPos(FontSize+6, 0)
		tx.Font = svg.NewFont(FontSize)
		tx.Baseline = "middle"
		g.Append(tx.AsElement())

		grp.Append(g.AsElement())
	}
	grp.Transform = svg.Translate(frame.Width-width, FontSize*2)
	return grp.AsElement()
}
