package chartkit

import (
	"math"
)

// Range is the raw extent of the data before any axis snapping.
type Range struct {
	Min float64
	Max float64
}

func NewRange(min, max float64) Range {
	return Range{
		Min: min,
		Max: max,
	}
}

func (r Range) Len() float64 {
	return r.Max - r.Min
}

// DataRange scans every value of every dataset. With no datasets (or
// only empty ones) it returns {+Inf, -Inf}; callers branch to the
// empty state before mapping values through such a range.
func DataRange(datasets []Dataset) Range {
	rg := NewRange(math.Inf(1), math.Inf(-1))
	for _, set := range datasets {
		for _, v := range set.Data {
			if v < rg.Min {
				rg.Min = v
			}
			if v > rg.Max {
				rg.Max = v
			}
		}
	}
	return rg
}

// StackedValues sums datasets per label index: the domain of the Y
// scale when bars are stacked.
func StackedValues(datasets []Dataset) []float64 {
	if len(datasets) == 0 {
		return nil
	}
	totals := make([]float64, len(datasets[0].Data))
	for _, set := range datasets {
		for i, v := range set.Data {
			if i < len(totals) {
				totals[i] += v
			}
		}
	}
	return totals
}

// NiceScale is a snapped axis range: Step is one of {1,2,5,10}*10^k,
// Min and Max are multiples of Step enclosing the data, and Ticks is
// the number of evenly spaced tick values on [Min, Max].
type NiceScale struct {
	Min   float64
	Max   float64
	Step  float64
	Ticks int
}

// CalculateNiceScale derives the axis range for [min, max] aiming at
// targetTicks tick values. A zero or non-finite span falls back to a
// unit step around the value so the result is always usable.
func CalculateNiceScale(min, max float64, targetTicks int) NiceScale {
	if targetTicks < 2 {
		targetTicks = DefaultTargetTicks
	}
	if min > max {
		min, max = max, min
	}
	if math.IsInf(min, 0) || math.IsInf(max, 0) || math.IsNaN(min) || math.IsNaN(max) {
		min, max = 0, 1
	}

	step := 1.0
	if span := max - min; span > 0 {
		rough := span / float64(targetTicks-1)
		magnitude := math.Pow(10, math.Floor(math.Log10(rough)))
		step = 10 * magnitude
		for _, mult := range []float64{1, 2, 5} {
			if c := mult * magnitude; c >= rough {
				step = c
				break
			}
		}
	}

	nice := NiceScale{
		Min:  math.Floor(min/step) * step,
		Max:  math.Ceil(max/step) * step,
		Step: step,
	}
	if nice.Min == nice.Max {
		nice.Max = nice.Min + step
	}
	nice.Ticks = int(math.Round((nice.Max-nice.Min)/nice.Step)) + 1
	return nice
}

// Values lists the tick values from Min to Max inclusive.
func (s NiceScale) Values() []float64 {
	all := make([]float64, 0, s.Ticks)
	for i := 0; i < s.Ticks; i++ {
		all = append(all, s.Min+float64(i)*s.Step)
	}
	return all
}

func (s NiceScale) span() float64 {
	if d := s.Max - s.Min; d > 0 {
		return d
	}
	return 1
}

// ValueToY maps a data value into the chart area, inverted because
// SVG Y grows downward: Min lands on the bottom edge, Max on the top.
func (s NiceScale) ValueToY(v float64, area ChartArea) float64 {
	return area.Y + area.Height - (v-s.Min)/s.span()*area.Height
}

// ValueToHeight is the unsigned pixel extent of v measured from the
// zero baseline.
func (s NiceScale) ValueToHeight(v float64, area ChartArea) float64 {
	return math.Abs(v) / s.span() * area.Height
}

// ScaleFor picks the scale domain for the visible datasets: stacked
// charts scale against per-label totals, everything else against the
// raw extent. BeginAtZero pulls the minimum down to zero.
func ScaleFor(datasets []Dataset, opts Options) NiceScale {
	var rg Range
	if opts.Stacked {
		rg = NewRange(math.Inf(1), math.Inf(-1))
		for _, v := range StackedValues(datasets) {
			if v < rg.Min {
				rg.Min = v
			}
			if v > rg.Max {
				rg.Max = v
			}
		}
	} else {
		rg = DataRange(datasets)
	}
	if opts.BeginAtZero && rg.Min > 0 {
		rg.Min = 0
	}
	return CalculateNiceScale(rg.Min, rg.Max, opts.TargetTicks)
}
