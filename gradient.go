package cmapgen

import (
	"fmt"

	"github.com/mazznoer/colorgrad"
)

// cmrmapKeypoints are the nine CMRmap control points (Rappaport's
// monochrome-compatible colormap), evenly spaced over [0, 1]. The full
// table is produced by per-channel linear interpolation between them.
var cmrmapKeypoints = Table{
	{0.00, 0.00, 0.00},
	{0.15, 0.15, 0.50},
	{0.30, 0.15, 0.75},
	{0.60, 0.20, 0.50},
	{1.00, 0.25, 0.15},
	{0.90, 0.50, 0.00},
	{0.90, 0.75, 0.10},
	{0.90, 0.90, 0.50},
	{1.00, 1.00, 1.00},
}

// GenerateTheme synthesizes an n-entry table for a named theme, for use
// when no Python source file is available to extract from.
func GenerateTheme(theme Theme, n int) (Table, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid entry count %d", n)
	}

	switch theme {
	case ThemeCMRMap:
		return cmrmapKeypoints.Resample(n), nil
	case ThemeGrayscale:
		return grayscaleRamp(n), nil
	case ThemeViridis:
		return gradientTable(colorgrad.Viridis(), n), nil
	case ThemeInferno:
		return gradientTable(colorgrad.Inferno(), n), nil
	case ThemeMagma:
		return gradientTable(colorgrad.Magma(), n), nil
	case ThemePlasma:
		return gradientTable(colorgrad.Plasma(), n), nil
	case ThemeTurbo:
		return gradientTable(colorgrad.Turbo(), n), nil
	default:
		return nil, fmt.Errorf("unknown theme %q", theme)
	}
}

// grayscaleRamp is the renderer's second theme: black for quiet,
// white for loud.
func grayscaleRamp(n int) Table {
	table := make(Table, n)
	for i := range table {
		v := 0.0
		if n > 1 {
			v = float64(i) / float64(n-1)
		}
		table[i] = Triplet{v, v, v}
	}
	return table
}

func gradientTable(grad colorgrad.Gradient, n int) Table {
	table := make(Table, n)
	for i := range table {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r, g, b, _ := grad.At(t).RGBA()
		table[i] = Triplet{
			float64(r) / 65535.0,
			float64(g) / 65535.0,
			float64(b) / 65535.0,
		}
	}
	return table
}

// ThemeDescription returns the color-progression comment emitted above
// a generated array.
func ThemeDescription(theme Theme) string {
	switch theme {
	case ThemeCMRMap:
		return "Black → Purple → Red → Yellow → White"
	case ThemeGrayscale:
		return "Black (quiet) → White (dense/loud)"
	default:
		return fmt.Sprintf("%s colormap, dark → bright", theme)
	}
}
