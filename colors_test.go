package chartkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPalette(t *testing.T) {
	colors := Palette(12)
	require.Len(t, colors, 12)
	require.Equal(t, Category10[0], colors[0])
	// wraps around modulo the palette size
	require.Equal(t, Category10[0], colors[10])
	require.Equal(t, Category10[1], colors[11])

	custom := Palette(3, "#111111", "#222222")
	require.Equal(t, []string{"#111111", "#222222", "#111111"}, custom)
}

func TestHexToRGB(t *testing.T) {
	r, g, b, ok := HexToRGB("#1f77b4")
	require.True(t, ok)
	require.Equal(t, []int{31, 119, 180}, []int{r, g, b})

	r, g, b, ok = HexToRGB("ff0000")
	require.True(t, ok)
	require.Equal(t, []int{255, 0, 0}, []int{r, g, b})

	for _, bad := range []string{"", "#fff", "#12345", "not-a-color", "#gggggg"} {
		_, _, _, ok := HexToRGB(bad)
		require.False(t, ok, bad)
	}
}

func TestRGBToHex(t *testing.T) {
	require.Equal(t, "#1f77b4", RGBToHex(31, 119, 180))
	// channels clamp instead of wrapping
	require.Equal(t, "#ff0000", RGBToHex(300, -5, 0))
}

func TestAddAlpha(t *testing.T) {
	require.Equal(t, "rgba(255, 0, 0, 0.5)", AddAlpha("#ff0000", 0.5))
	require.Equal(t, "rgba(10, 20, 30, 0.25)", AddAlpha("rgb(10, 20, 30)", 0.25))
	// unknown formats pass through unchanged
	require.Equal(t, "hsl(120, 50%, 50%)", AddAlpha("hsl(120, 50%, 50%)", 0.5))
}

func TestLightenDarken(t *testing.T) {
	// round(2.55*10) = 26 per channel
	require.Equal(t, "#9a9a9a", Lighten("#808080", 10))
	require.Equal(t, "#666666", Darken("#808080", 10))

	// clamped at the channel bounds
	require.Equal(t, "#ffffff", Lighten("#f0f0f0", 50))
	require.Equal(t, "#000000", Darken("#101010", 10))

	// unparseable input is returned as-is
	require.Equal(t, "tomato", Lighten("tomato", 10))
}

func TestContrastColor(t *testing.T) {
	require.Equal(t, "#000000", ContrastColor("#ffffff"))
	require.Equal(t, "#ffffff", ContrastColor("#000000"))
	// pure red has luminance 0.299
	require.Equal(t, "#ffffff", ContrastColor("#ff0000"))
	require.Equal(t, "#000000", ContrastColor("#ffff00"))
	require.Equal(t, "#000000", ContrastColor("garbage"))
}
