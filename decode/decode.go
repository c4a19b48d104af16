// Package decode loads declarative chart definitions: a YAML file
// naming the chart kind, its options, and its data, either inline or
// pulled from a CSV file.
package decode

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chartkit/chartkit"
	"gopkg.in/yaml.v2"
)

var (
	ErrKind = errors.New("unknown chart kind")
	ErrData = errors.New("definition has no data")
)

// Definition is one fully resolved chart: kind, data and effective
// options (file options merged over the defaults).
type Definition struct {
	Kind    chartkit.Kind
	Title   string
	Data    chartkit.ChartData
	Options chartkit.Options
}

type file struct {
	Kind     string                 `yaml:"kind"`
	Title    string                 `yaml:"title"`
	Options  map[string]interface{} `yaml:"options"`
	Labels   []string               `yaml:"labels"`
	Datasets []dataset              `yaml:"datasets"`
	CSV      *csvSource             `yaml:"csv"`
}

type dataset struct {
	Label       string      `yaml:"label"`
	Data        []float64   `yaml:"data"`
	Color       interface{} `yaml:"color"`
	BorderColor interface{} `yaml:"borderColor"`
	BorderWidth float64     `yaml:"borderWidth"`
	Fill        bool        `yaml:"fill"`
	Tension     *float64    `yaml:"tension"`
	ShowPoints  bool        `yaml:"showPoints"`
	PointRadius float64     `yaml:"pointRadius"`
	BorderDash  []float64   `yaml:"borderDash"`
}

// File reads the definition at path; CSV sources resolve relative to
// the file's directory.
func File(path string) (Definition, error) {
	r, err := os.Open(path)
	if err != nil {
		return Definition{}, err
	}
	defer r.Close()
	return Read(r, filepath.Dir(path))
}

func Read(r io.Reader, dir string) (Definition, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return Definition{}, fmt.Errorf("decode definition: %w", err)
	}

	def := Definition{
		Title: f.Title,
	}
	var err error
	if def.Kind, def.Options, err = resolveKind(f.Kind, f.Options); err != nil {
		return Definition{}, err
	}

	switch {
	case f.CSV != nil:
		def.Data, err = f.CSV.load(dir)
		if err != nil {
			return Definition{}, err
		}
	case len(f.Datasets) > 0:
		def.Data.Labels = f.Labels
		for _, d := range f.Datasets {
			def.Data.Datasets = append(def.Data.Datasets, d.dataset())
		}
	default:
		return Definition{}, ErrData
	}
	return def, nil
}

func (d dataset) dataset() chartkit.Dataset {
	return chartkit.Dataset{
		Label:           d.Label,
		Data:            d.Data,
		BackgroundColor: colorList(d.Color),
		BorderColor:     colorList(d.BorderColor),
		BorderWidth:     d.BorderWidth,
		Fill:            d.Fill,
		Tension:         d.Tension,
		ShowPoints:      d.ShowPoints,
		PointRadius:     d.PointRadius,
		BorderDash:      d.BorderDash,
	}
}

// colorList accepts a single color or a list of colors.
func colorList(v interface{}) chartkit.ColorList {
	switch c := v.(type) {
	case string:
		return chartkit.ColorList{c}
	case []interface{}:
		var list chartkit.ColorList
		for _, e := range c {
			if s, ok := e.(string); ok {
				list = append(list, s)
			}
		}
		return list
	default:
		return nil
	}
}

func resolveKind(kind string, opts map[string]interface{}) (chartkit.Kind, chartkit.Options, error) {
	merged := chartkit.MergeMaps(defaultOptions(), normalizeMap(opts))
	options := buildOptions(merged)
	switch kind {
	case "bar", "":
		return chartkit.KindBar, options, nil
	case "stacked-bar":
		options.Stacked = true
		return chartkit.KindBar, options, nil
	case "line":
		return chartkit.KindLine, options, nil
	case "area":
		return chartkit.KindArea, options, nil
	case "pie":
		return chartkit.KindPie, options, nil
	case "donut":
		options.Donut = true
		return chartkit.KindPie, options, nil
	default:
		return 0, options, fmt.Errorf("%w: %q", ErrKind, kind)
	}
}
