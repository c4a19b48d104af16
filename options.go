package chartkit

// Alignment controls where category points sit on the X axis: at the
// center of their 1/n segment, or spread edge to edge across n-1
// equal intervals. The two modes are never mixed on one axis.
type Alignment int

const (
	AlignCentered Alignment = iota
	AlignFlush
)

// LabelPosition places pie slice labels inside the slice or outside
// the radius with a connector line.
type LabelPosition int

const (
	LabelOutside LabelPosition = iota
	LabelInside
	LabelNone
)

// LabelFormat selects what a pie slice label displays.
type LabelFormat int

const (
	FormatPercent LabelFormat = iota
	FormatValue
	FormatLabel
)

type Options struct {
	Responsive          bool
	MaintainAspectRatio bool
	AspectRatio         float64
	Width               float64
	Height              float64
	Padding             Padding

	BeginAtZero bool
	Stacked     bool
	GapRatio    float64
	Align       Alignment
	TargetTicks int

	Line LineOptions

	Donut          bool
	DonutThickness float64
	Explode        float64
	ExplodeSlices  []float64
	LabelPosition  LabelPosition
	LabelFormat    LabelFormat
	StartAngle     *float64 // nil means the default; 0 starts at 12 o'clock

	Legend  LegendOptions
	Tooltip TooltipOptions
}

type LineOptions struct {
	Smooth  bool
	Tension float64
}

type LegendOptions struct {
	Show bool
}

// TooltipOptions is carried for hosts that draw their own tooltips
// from hit-test events; no tooltip geometry is computed here.
type TooltipOptions struct {
	Show bool
}

const (
	DefaultWidth       = 600
	DefaultHeight      = 300
	DefaultAspectRatio = 2
	DefaultGapRatio    = 0.2
	DefaultTargetTicks = 5
	DefaultStartAngle  = -90
	DefaultExplode     = 10
)

var DefaultPadding = Padding{
	Top:    20,
	Right:  20,
	Bottom: 40,
	Left:   50,
}

func DefaultOptions() Options {
	var opts Options
	opts.Responsive = true
	opts.MaintainAspectRatio = true
	opts.AspectRatio = DefaultAspectRatio
	opts.Padding = DefaultPadding
	opts.GapRatio = DefaultGapRatio
	opts.TargetTicks = DefaultTargetTicks
	opts.Line.Tension = DefaultTension
	start := float64(DefaultStartAngle)
	opts.StartAngle = &start
	opts.Legend.Show = true
	opts.Tooltip.Show = true
	return opts
}

// withDefaults fills zero-valued numeric knobs so downstream geometry
// never divides by zero. Boolean flags are kept as given.
func (o Options) withDefaults() Options {
	if o.AspectRatio == 0 {
		o.AspectRatio = DefaultAspectRatio
	}
	if o.GapRatio == 0 {
		o.GapRatio = DefaultGapRatio
	}
	if o.TargetTicks < 2 {
		o.TargetTicks = DefaultTargetTicks
	}
	if o.Line.Tension == 0 {
		o.Line.Tension = DefaultTension
	}
	if o.Padding == (Padding{}) {
		o.Padding = DefaultPadding
	}
	if o.StartAngle == nil {
		start := float64(DefaultStartAngle)
		o.StartAngle = &start
	}
	return o
}

// MergeMaps merges overlay into base recursively and returns a new
// map: nested maps merge field by field, everything else (scalars,
// arrays) is overwritten by the overlay. Neither argument is
// modified. Used when layering file-supplied options over presets.
func MergeMaps(base, overlay map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		sub, ok := v.(map[string]interface{})
		if !ok {
			merged[k] = v
			continue
		}
		prev, ok := merged[k].(map[string]interface{})
		if !ok {
			merged[k] = MergeMaps(nil, sub)
			continue
		}
		merged[k] = MergeMaps(prev, sub)
	}
	return merged
}
