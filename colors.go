package chartkit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	Category10 []string
	Tableau10  []string
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// Palette returns count colors cycling over the given palette, or
// over Category10 when none is given. Color i is stable as the
// dataset count grows.
func Palette(count int, custom ...string) []string {
	base := Category10
	if len(custom) > 0 {
		base = custom
	}
	all := make([]string, count)
	for i := 0; i < count; i++ {
		all[i] = base[i%len(base)]
	}
	return all
}

// HexToRGB parses a #rrggbb color. Anything that is not 6 hex digits
// (with or without the leading #) reports ok == false.
func HexToRGB(color string) (r, g, b int, ok bool) {
	str := strings.TrimPrefix(color, "#")
	if len(str) != 6 {
		return 0, 0, 0, false
	}
	val, err := strconv.ParseUint(str, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(val >> 16), int(val >> 8 & 0xff), int(val & 0xff), true
}

func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

// AddAlpha rewrites a hex or rgb(...) color as rgba(...). Other
// formats pass through unchanged.
func AddAlpha(color string, alpha float64) string {
	if r, g, b, ok := HexToRGB(color); ok {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, ftoa(alpha))
	}
	if strings.HasPrefix(color, "rgb(") && strings.HasSuffix(color, ")") {
		inner := strings.TrimSuffix(strings.TrimPrefix(color, "rgb("), ")")
		return fmt.Sprintf("rgba(%s, %s)", inner, ftoa(alpha))
	}
	return color
}

// Lighten shifts every channel up by round(2.55*percent), clamped to
// [0, 255]. Unparseable colors are returned unchanged.
func Lighten(color string, percent float64) string {
	return shiftColor(color, percent)
}

// Darken is Lighten with the shift applied downward.
func Darken(color string, percent float64) string {
	return shiftColor(color, -percent)
}

func shiftColor(color string, percent float64) string {
	r, g, b, ok := HexToRGB(color)
	if !ok {
		return color
	}
	shift := int(math.Round(2.55 * percent))
	return RGBToHex(r+shift, g+shift, b+shift)
}

// ContrastColor picks black or white text for the given background
// using the perceptual luminance (0.299r+0.587g+0.114b)/255.
func ContrastColor(background string) string {
	r, g, b, ok := HexToRGB(background)
	if !ok {
		return "#000000"
	}
	lum := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
	if lum > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}

func clampChannel(c int) int {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}
