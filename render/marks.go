package render

import (
	"github.com/chartkit/chartkit"
	"github.com/midbel/svg"
)

func pointMark(pt chartkit.Point, radius float64, color string) svg.Element {
	var el svg.Circle
	el.Pos = pos(pt)
	el.Radius = radius
	el.Fill = svg.NewFill(color)
	return el.AsElement()
}
