package decode

import (
	"github.com/chartkit/chartkit"
)

// defaultOptions is the option tree the file's options merge over,
// mirroring chartkit.DefaultOptions.
func defaultOptions() map[string]interface{} {
	base := chartkit.DefaultOptions()
	return map[string]interface{}{
		"responsive":          base.Responsive,
		"maintainAspectRatio": base.MaintainAspectRatio,
		"aspectRatio":         base.AspectRatio,
		"padding": map[string]interface{}{
			"top":    base.Padding.Top,
			"right":  base.Padding.Right,
			"bottom": base.Padding.Bottom,
			"left":   base.Padding.Left,
		},
		"gapRatio":    base.GapRatio,
		"targetTicks": base.TargetTicks,
		"align":       "centered",
		"line": map[string]interface{}{
			"smooth":  false,
			"tension": base.Line.Tension,
		},
		"labelPosition": "outside",
		"labelFormat":   "percent",
		"startAngle":    *base.StartAngle,
		"legend":        map[string]interface{}{"show": true},
		"tooltip":       map[string]interface{}{"show": true},
	}
}

func buildOptions(m map[string]interface{}) chartkit.Options {
	var opts chartkit.Options
	opts.Responsive = getBool(m, "responsive")
	opts.MaintainAspectRatio = getBool(m, "maintainAspectRatio")
	opts.AspectRatio = getFloat(m, "aspectRatio")
	opts.Width = getFloat(m, "width")
	opts.Height = getFloat(m, "height")
	if pad := getMap(m, "padding"); pad != nil {
		opts.Padding = chartkit.Padding{
			Top:    getFloat(pad, "top"),
			Right:  getFloat(pad, "right"),
			Bottom: getFloat(pad, "bottom"),
			Left:   getFloat(pad, "left"),
		}
	}
	opts.BeginAtZero = getBool(m, "beginAtZero")
	opts.Stacked = getBool(m, "stacked")
	opts.GapRatio = getFloat(m, "gapRatio")
	opts.TargetTicks = int(getFloat(m, "targetTicks"))
	if getString(m, "align") == "flush" {
		opts.Align = chartkit.AlignFlush
	}
	if line := getMap(m, "line"); line != nil {
		opts.Line.Smooth = getBool(line, "smooth")
		opts.Line.Tension = getFloat(line, "tension")
	}
	opts.Donut = getBool(m, "donut")
	opts.DonutThickness = getFloat(m, "donutThickness")
	opts.Explode = getFloat(m, "explode")
	for _, v := range getList(m, "explodeSlices") {
		if f, ok := toFloat(v); ok {
			opts.ExplodeSlices = append(opts.ExplodeSlices, f)
		}
	}
	switch getString(m, "labelPosition") {
	case "inside":
		opts.LabelPosition = chartkit.LabelInside
	case "none":
		opts.LabelPosition = chartkit.LabelNone
	default:
		opts.LabelPosition = chartkit.LabelOutside
	}
	switch getString(m, "labelFormat") {
	case "value":
		opts.LabelFormat = chartkit.FormatValue
	case "label":
		opts.LabelFormat = chartkit.FormatLabel
	default:
		opts.LabelFormat = chartkit.FormatPercent
	}
	start := getFloat(m, "startAngle")
	opts.StartAngle = &start
	if legend := getMap(m, "legend"); legend != nil {
		opts.Legend.Show = getBool(legend, "show")
	}
	if tooltip := getMap(m, "tooltip"); tooltip != nil {
		opts.Tooltip.Show = getBool(tooltip, "show")
	}
	return opts
}

// normalizeMap rewrites the map[interface{}]interface{} nodes yaml.v2
// produces into string-keyed maps so they can merge with the presets.
func normalizeMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[interface{}]interface{}:
		sub := make(map[string]interface{}, len(val))
		for k, e := range val {
			if s, ok := k.(string); ok {
				sub[s] = normalizeValue(e)
			}
		}
		return sub
	case map[string]interface{}:
		return normalizeMap(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = normalizeValue(e)
		}
		return out
	default:
		return v
	}
}

func getMap(m map[string]interface{}, key string) map[string]interface{} {
	sub, _ := m[key].(map[string]interface{})
	return sub
}

func getList(m map[string]interface{}, key string) []interface{} {
	list, _ := m[key].([]interface{})
	return list
}

func getBool(m map[string]interface{}, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func getString(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func getFloat(m map[string]interface{}, key string) float64 {
	f, _ := toFloat(m[key])
	return f
}

func toFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	default:
		return 0, false
	}
}
