package chartkit

import (
	"fmt"
	"math"
)

// ChartData is the declarative input of every chart: one label per
// category and any number of datasets whose values line up with the
// labels.
type ChartData struct {
	Labels   []string
	Datasets []Dataset
}

type Dataset struct {
	Label           string
	Data            []float64
	BackgroundColor ColorList
	BorderColor     ColorList
	BorderWidth     float64
	Fill            bool
	Tension         *float64 // nil means the default; 0 forces straight segments
	ShowPoints      bool
	PointRadius     float64
	BorderDash      []float64
}

// ColorList holds either a single color applied to every element or
// one color per element.
type ColorList []string

// At returns the color for element i, cycling when the list is
// shorter than the element count. Empty lists yield "".
func (c ColorList) At(i int) string {
	if len(c) == 0 {
		return ""
	}
	return c[i%len(c)]
}

// State classifies input data before any geometry is computed. Empty
// wins over Invalid: a chart without datasets or labels is shown as
// empty even when the remaining structure would not validate.
type State int

const (
	StateOK State = iota
	StateEmpty
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateInvalid:
		return "invalid"
	default:
		return "ok"
	}
}

// ValidateChartData reports whether data is structurally sound:
// datasets is non-empty and every dataset has exactly one value per
// label.
func ValidateChartData(data ChartData) bool {
	if len(data.Datasets) == 0 {
		return false
	}
	for _, set := range data.Datasets {
		if set.Data == nil || len(set.Data) != len(data.Labels) {
			return false
		}
	}
	return true
}

// ValidateNumericData reports whether every value is a finite number.
func ValidateNumericData(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func DataState(data ChartData) State {
	if len(data.Datasets) == 0 || len(data.Labels) == 0 {
		return StateEmpty
	}
	if !ValidateChartData(data) {
		return StateInvalid
	}
	return StateOK
}

const (
	DefaultBorderWidth = 1
	DefaultTension     = 0.4
	DefaultPointRadius = 3
)

// Normalize copies data and fills dataset defaults: a palette color
// by dataset index, border width 1, a generated label, the spline
// tension. The caller's slices are never written to.
func Normalize(data ChartData, custom ...string) ChartData {
	out := ChartData{
		Labels:   append([]string(nil), data.Labels...),
		Datasets: make([]Dataset, len(data.Datasets)),
	}
	colors := Palette(len(data.Datasets), custom...)
	for i, set := range data.Datasets {
		set.Data = append([]float64(nil), set.Data...)
		set.BackgroundColor = append(ColorList(nil), set.BackgroundColor...)
		set.BorderColor = append(ColorList(nil), set.BorderColor...)
		set.BorderDash = append([]float64(nil), set.BorderDash...)
		if set.Label == "" {
			set.Label = fmt.Sprintf("Dataset %d", i+1)
		}
		if len(set.BackgroundColor) == 0 {
			set.BackgroundColor = ColorList{colors[i]}
		}
		if len(set.BorderColor) == 0 {
			set.BorderColor = set.BackgroundColor
		}
		if set.BorderWidth == 0 {
			set.BorderWidth = DefaultBorderWidth
		}
		tension := DefaultTension
		if set.Tension != nil {
			tension = *set.Tension
		}
		set.Tension = &tension
		if set.PointRadius == 0 {
			set.PointRadius = DefaultPointRadius
		}
		out.Datasets[i] = set
	}
	return out
}
