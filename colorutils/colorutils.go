package colorutils

import (
	"fmt"
	"math"
)

// Clamp01 clips a channel value to the normalized [0, 1] range.
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Rgb255 converts normalized channels to 8-bit values.
func Rgb255(rgb [3]float64) [3]uint8 {
	return [3]uint8{
		uint8(math.Round(Clamp01(rgb[0]) * 255)),
		uint8(math.Round(Clamp01(rgb[1]) * 255)),
		uint8(math.Round(Clamp01(rgb[2]) * 255)),
	}
}

// Hex formats normalized channels as a #rrggbb string.
func Hex(rgb [3]float64) string {
	b := Rgb255(rgb)
	return fmt.Sprintf("#%02x%02x%02x", b[0], b[1], b[2])
}

// Luminance returns the Rec.601 luma of normalized channels. Grayscale
// colormaps are expected to be monotonic in this value.
func Luminance(rgb [3]float64) float64 {
	return 0.299*rgb[0] + 0.587*rgb[1] + 0.114*rgb[2]
}
