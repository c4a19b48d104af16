package chartkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	require.True(t, opts.Responsive)
	require.True(t, opts.MaintainAspectRatio)
	require.EqualValues(t, DefaultAspectRatio, opts.AspectRatio)
	require.EqualValues(t, DefaultGapRatio, opts.GapRatio)
	require.NotNil(t, opts.StartAngle)
	require.EqualValues(t, DefaultStartAngle, *opts.StartAngle)
	require.Equal(t, DefaultPadding, opts.Padding)
}

func TestMergeMaps(t *testing.T) {
	base := map[string]interface{}{
		"scalar": 1,
		"list":   []interface{}{1, 2, 3},
		"nested": map[string]interface{}{
			"keep":     "base",
			"override": "base",
		},
	}
	overlay := map[string]interface{}{
		"scalar": 2,
		"list":   []interface{}{9},
		"nested": map[string]interface{}{
			"override": "overlay",
			"extra":    true,
		},
	}

	merged := MergeMaps(base, overlay)

	// scalars and arrays overwrite
	require.Equal(t, 2, merged["scalar"])
	require.Equal(t, []interface{}{9}, merged["list"])

	// maps merge field by field
	nested := merged["nested"].(map[string]interface{})
	require.Equal(t, "base", nested["keep"])
	require.Equal(t, "overlay", nested["override"])
	require.Equal(t, true, nested["extra"])

	// inputs stay untouched
	require.Equal(t, 1, base["scalar"])
	require.Equal(t, "base", base["nested"].(map[string]interface{})["override"])
}

func TestMergeMapsNewBranch(t *testing.T) {
	merged := MergeMaps(map[string]interface{}{"a": 1}, map[string]interface{}{
		"b": map[string]interface{}{"c": 2},
	})
	require.Equal(t, 1, merged["a"])
	require.Equal(t, 2, merged["b"].(map[string]interface{})["c"])
}

func TestOptionsWithDefaults(t *testing.T) {
	var opts Options
	filled := opts.withDefaults()
	require.EqualValues(t, DefaultAspectRatio, filled.AspectRatio)
	require.EqualValues(t, DefaultGapRatio, filled.GapRatio)
	require.Equal(t, DefaultTargetTicks, filled.TargetTicks)
	require.EqualValues(t, DefaultTension, filled.Line.Tension)
	require.Equal(t, DefaultPadding, filled.Padding)
	require.NotNil(t, filled.StartAngle)
	require.EqualValues(t, DefaultStartAngle, *filled.StartAngle)

	// explicit values survive
	zero := 0.0
	opts.GapRatio = 0.5
	opts.Padding = Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}
	opts.StartAngle = &zero
	filled = opts.withDefaults()
	require.EqualValues(t, 0.5, filled.GapRatio)
	require.EqualValues(t, 4, filled.Padding.Left)
	require.Zero(t, *filled.StartAngle)
}
