package decode

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/chartkit/chartkit"
)

// csvSource pulls labels and one dataset per value column out of a
// CSV file.
type csvSource struct {
	Path         string `yaml:"path"`
	LabelColumn  int    `yaml:"labelColumn"`
	ValueColumns []int  `yaml:"valueColumns"`
	Header       bool   `yaml:"header"`
}

func (src csvSource) load(dir string) (chartkit.ChartData, error) {
	var data chartkit.ChartData

	path := src.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	r, err := os.Open(path)
	if err != nil {
		return data, err
	}
	defer r.Close()

	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return data, fmt.Errorf("read %s: %w", src.Path, err)
	}
	if len(rows) == 0 {
		return data, ErrData
	}

	cols := src.ValueColumns
	if len(cols) == 0 {
		for i := range rows[0] {
			if i != src.LabelColumn {
				cols = append(cols, i)
			}
		}
	}

	names := make([]string, len(cols))
	if src.Header {
		for i, c := range cols {
			if c < len(rows[0]) {
				names[i] = rows[0][c]
			}
		}
		rows = rows[1:]
	}

	sets := make([]chartkit.Dataset, len(cols))
	for i := range sets {
		sets[i].Label = names[i]
	}
	for _, row := range rows {
		if src.LabelColumn >= len(row) {
			return data, fmt.Errorf("%s: missing label column %d", src.Path, src.LabelColumn)
		}
		data.Labels = append(data.Labels, row[src.LabelColumn])
		for i, c := range cols {
			if c >= len(row) {
				return data, fmt.Errorf("%s: missing value column %d", src.Path, c)
			}
			v, err := strconv.ParseFloat(row[c], 64)
			if err != nil {
				return data, fmt.Errorf("%s: column %d: %w", src.Path, c, err)
			}
			sets[i].Data = append(sets[i].Data, v)
		}
	}
	data.Datasets = sets
	return data, nil
}
