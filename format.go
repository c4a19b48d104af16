package chartkit

import (
	"math"
	"strconv"
)

// FormatNumber renders axis and label values compactly: thousands and
// millions get a K/M suffix with the given number of decimals
// (default 2), smaller values print as-is.
func FormatNumber(v float64, decimals ...int) string {
	prec := 2
	if len(decimals) > 0 {
		prec = decimals[0]
	}
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return strconv.FormatFloat(v/1_000_000, 'f', prec, 64) + "M"
	case abs >= 1_000:
		return strconv.FormatFloat(v/1_000, 'f', prec, 64) + "K"
	default:
		return ftoa(v)
	}
}

// ftoa prints a coordinate with just enough precision for SVG
// attributes, trimming the noise of float arithmetic.
func ftoa(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // normalize -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
