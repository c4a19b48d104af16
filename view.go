package chartkit

import (
	"math"
	"sync"
	"time"
)

type Kind int

const (
	KindBar Kind = iota
	KindLine
	KindArea
	KindPie
)

// LineGeom is the renderable geometry of one line or area dataset.
type LineGeom struct {
	DatasetIndex int
	Label        string
	Color        string
	BorderColor  string
	BorderWidth  float64
	BorderDash   []float64
	Path         string
	AreaPath     string
	Points       []Point
	Smooth       bool
	Tension      float64
	PointRadius  float64
	ShowPoints   bool
	Values       []float64
}

// SliceGeom is the renderable geometry of one pie or donut slice.
type SliceGeom struct {
	PieSlice
	Path    string
	Color   string
	OffsetX float64
	OffsetY float64
	Text    SliceLabel
}

// PieGeom locates the pie within the chart area.
type PieGeom struct {
	CX    float64
	CY    float64
	R     float64
	Inner float64
}

type LegendItem struct {
	Index    int
	Label    string
	Color    string
	Disabled bool
}

// Frame is one complete geometry snapshot: a pure function of the
// data, options, container size and visibility selection at the time
// it was computed. Nothing in it is mutated afterwards.
type Frame struct {
	Kind   Kind
	State  State
	Width  float64
	Height float64
	Area   ChartArea
	Scale  NiceScale
	Labels []string
	XTicks []Tick
	YTicks []Tick
	Bars   []BarRect
	Lines  []LineGeom
	Slices []SliceGeom
	Pie    PieGeom
	Legend []LegendItem
}

// View holds the current inputs of one chart and recomputes its
// Frame on demand. Setters only mark the view dirty; the actual work
// happens in Frame, so a burst of input changes costs one recompute.
// A View is not safe for concurrent use: it models the single
// UI-thread execution of the host.
type View struct {
	kind   Kind
	data   ChartData
	opts   Options
	vis    *Visibility
	width  float64
	height float64

	dirty bool
	frame Frame
}

func NewView(kind Kind, data ChartData, opts Options) *View {
	return &View{
		kind:  kind,
		data:  data,
		opts:  opts.withDefaults(),
		vis:   NewVisibility(),
		dirty: true,
	}
}

func (v *View) SetData(data ChartData) {
	v.data = data
	v.dirty = true
}

func (v *View) SetOptions(opts Options) {
	v.opts = opts.withDefaults()
	v.dirty = true
}

// Resize records the latest container size. Callers wanting frame
// coalescing wrap it in a Debouncer.
func (v *View) Resize(width, height float64) {
	v.width, v.height = width, height
	v.dirty = true
}

// Toggle flips dataset visibility and reports the legend event.
func (v *View) Toggle(index int) LegendToggle {
	disabled := v.vis.Toggle(index)
	v.dirty = true
	return LegendToggle{
		Index:    index,
		Disabled: disabled,
	}
}

func (v *View) ShowAll() {
	v.vis.ShowAll()
	v.dirty = true
}

func (v *View) HideAll() {
	v.vis.HideAll(len(v.data.Datasets))
	v.dirty = true
}

// Frame returns the current geometry snapshot, recomputing it only
// when an input changed since the last call.
func (v *View) Frame() Frame {
	if v.dirty {
		v.frame = v.compute()
		v.dirty = false
	}
	return v.frame
}

func (v *View) compute() Frame {
	width, height := ResolveSize(v.width, v.height, v.opts)
	frame := Frame{
		Kind:   v.kind,
		State:  DataState(v.data),
		Width:  width,
		Height: height,
		Area:   NewChartArea(width, height, v.opts.Padding),
		Labels: append([]string(nil), v.data.Labels...),
	}
	if frame.State != StateOK {
		return frame
	}

	norm := Normalize(v.data)
	if v.opts.Legend.Show {
		for i, set := range norm.Datasets {
			frame.Legend = append(frame.Legend, LegendItem{
				Index:    i,
				Label:    set.Label,
				Color:    set.BackgroundColor.At(0),
				Disabled: v.vis.Disabled(i),
			})
		}
	}

	var (
		visible = v.vis.Visible(norm.Datasets)
		indices = v.vis.VisibleIndices(len(norm.Datasets))
	)
	if v.kind == KindPie {
		v.computePie(&frame, visible)
		return frame
	}

	frame.Scale = ScaleFor(visible, v.opts)
	frame.XTicks = XTicks(frame.Labels, frame.Area, v.opts.Align)
	frame.YTicks = YTicks(frame.Scale, frame.Area, nil)

	switch v.kind {
	case KindBar:
		sub := ChartData{Labels: norm.Labels, Datasets: visible}
		if v.opts.Stacked {
			frame.Bars = StackedBars(sub, frame.Scale, frame.Area, v.opts.GapRatio)
		} else {
			frame.Bars = GroupedBars(sub, frame.Scale, frame.Area, v.opts.GapRatio)
		}
		for i := range frame.Bars {
			frame.Bars[i].DatasetIndex = indices[frame.Bars[i].DatasetIndex]
		}
	default:
		for fi, set := range visible {
			frame.Lines = append(frame.Lines, v.lineGeom(set, indices[fi], frame))
		}
	}
	return frame
}

func (v *View) lineGeom(set Dataset, index int, frame Frame) LineGeom {
	var (
		pts     = LinePoints(set.Data, frame.Scale, frame.Area, v.opts.Align)
		tension = *set.Tension
		smooth  = v.opts.Line.Smooth && tension > 0
		geom    = LineGeom{
			DatasetIndex: index,
			Label:        set.Label,
			Color:        set.BackgroundColor.At(0),
			BorderColor:  set.BorderColor.At(0),
			BorderWidth:  set.BorderWidth,
			BorderDash:   set.BorderDash,
			Points:       pts,
			Smooth:       smooth,
			Tension:      tension,
			PointRadius:  set.PointRadius,
			ShowPoints:   set.ShowPoints,
			Values:       set.Data,
		}
	)
	if smooth {
		geom.Path = SmoothPath(pts, tension)
	} else {
		geom.Path = LinePath(pts)
	}
	if v.kind == KindArea || set.Fill {
		geom.AreaPath = AreaPath(pts, frame.Area, smooth, tension)
	}
	return geom
}

func (v *View) computePie(frame *Frame, visible []Dataset) {
	if len(visible) == 0 || len(frame.Labels) == 0 {
		frame.State = StateEmpty
		return
	}
	var (
		set    = visible[0]
		radius = math.Min(frame.Area.Width, frame.Area.Height) / 2
	)
	explode := v.opts.Explode
	if len(v.opts.ExplodeSlices) > 0 {
		for _, e := range v.opts.ExplodeSlices {
			explode = math.Max(explode, e)
		}
	}
	radius -= explode
	if v.opts.LabelPosition == LabelOutside {
		radius -= 25
	}
	if radius < 0 {
		radius = 0
	}

	frame.Pie = PieGeom{
		CX: frame.Area.X + frame.Area.Width/2,
		CY: frame.Area.Y + frame.Area.Height/2,
		R:  radius,
	}
	if v.opts.Donut {
		thickness := v.opts.DonutThickness
		if thickness <= 0 || thickness >= radius {
			thickness = radius / 2
		}
		frame.Pie.Inner = radius - thickness
	}

	var (
		colors = Palette(len(set.Data))
		pie    = frame.Pie
	)
	frame.Legend = frame.Legend[:0]
	for i, s := range CalculatePieSlices(set.Data, *v.opts.StartAngle) {
		var geom SliceGeom
		geom.PieSlice = s
		geom.Color = set.BackgroundColor.At(i)
		if len(set.BackgroundColor) <= 1 {
			geom.Color = colors[i]
		}
		if amount := v.sliceExplode(i); amount > 0 {
			geom.OffsetX, geom.OffsetY = ExplodeOffset(s, amount)
		}
		if pie.Inner > 0 {
			geom.Path = DescribeDonutSlice(pie.CX+geom.OffsetX, pie.CY+geom.OffsetY, pie.R, pie.Inner, s.StartAngle, s.EndAngle)
		} else {
			geom.Path = DescribePieSlice(pie.CX+geom.OffsetX, pie.CY+geom.OffsetY, pie.R, s.StartAngle, s.EndAngle)
		}
		if label := frame.Labels[i]; v.opts.LabelPosition != LabelNone {
			text := SliceLabelText(s, label, v.opts.LabelFormat)
			if text != "" {
				if v.opts.LabelPosition == LabelInside {
					geom.Text = InsideSliceLabel(s, pie.CX+geom.OffsetX, pie.CY+geom.OffsetY, pie.R, pie.Inner, text, geom.Color)
				} else {
					geom.Text = OutsideSliceLabel(s, pie.CX+geom.OffsetX, pie.CY+geom.OffsetY, pie.R, text)
				}
			}
		}
		frame.Slices = append(frame.Slices, geom)
		if v.opts.Legend.Show {
			frame.Legend = append(frame.Legend, LegendItem{
				Index: i,
				Label: frame.Labels[i],
				Color: geom.Color,
			})
		}
	}
}

func (v *View) sliceExplode(i int) float64 {
	if i < len(v.opts.ExplodeSlices) {
		return v.opts.ExplodeSlices[i]
	}
	return v.opts.Explode
}

// DefaultDebounce is one animation frame.
const DefaultDebounce = 16 * time.Millisecond

// Debouncer coalesces container size updates: only the latest size
// observed within the window is delivered, superseding any pending
// one. It is the boundary between the external resize observer and
// the single-threaded view.
type Debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	timer  *time.Timer
	width  float64
	height float64
	fn     func(width, height float64)
}

func NewDebouncer(delay time.Duration, fn func(width, height float64)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{
		delay: delay,
		fn:    fn,
	}
}

// Observe records a size and (re)arms the timer. An earlier pending
// delivery is discarded, never executed.
func (d *Debouncer) Observe(width, height float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.width, d.height = width, height
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	var (
		width  = d.width
		height = d.height
	)
	d.timer = nil
	d.mu.Unlock()
	d.fn(width, height)
}

// Stop cancels any pending delivery.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
