package cmapgen

import (
	"errors"
	"strings"
)

// Triplet is a single colormap entry: normalized red, green and blue
// channel values, conventionally in [0, 1].
type Triplet [3]float64

// Table is an ordered colormap. Index 0 is the darkest end by
// convention. A Table is read-only once built.
type Table []Triplet

// At returns the linearly interpolated entry at position t in [0, 1].
func (tb Table) At(t float64) Triplet {
	if len(tb) == 0 {
		return Triplet{}
	}
	if t <= 0 {
		return tb[0]
	}
	if t >= 1 {
		return tb[len(tb)-1]
	}

	pos := t * float64(len(tb)-1)
	lower := int(pos)
	upper := lower + 1
	if upper > len(tb)-1 {
		upper = len(tb) - 1
	}
	frac := pos - float64(lower)

	var out Triplet
	for c := 0; c < 3; c++ {
		out[c] = tb[lower][c] + frac*(tb[upper][c]-tb[lower][c])
	}
	return out
}

// Resample returns a new table with n entries spread evenly over tb.
func (tb Table) Resample(n int) Table {
	if n <= 0 || len(tb) == 0 {
		return nil
	}
	out := make(Table, n)
	if n == 1 {
		out[0] = tb[0]
		return out
	}
	for i := range out {
		out[i] = tb.At(float64(i) / float64(n-1))
	}
	return out
}

type Theme string

const (
	ThemeCMRMap    Theme = "cmrmap"
	ThemeGrayscale Theme = "grayscale"
	ThemeViridis   Theme = "viridis"
	ThemeInferno   Theme = "inferno"
	ThemeMagma     Theme = "magma"
	ThemePlasma    Theme = "plasma"
	ThemeTurbo     Theme = "turbo"
)

// Themes lists every generated colormap in batch-emit order.
var Themes = []Theme{
	ThemeCMRMap,
	ThemeGrayscale,
	ThemeViridis,
	ThemeInferno,
	ThemeMagma,
	ThemePlasma,
	ThemeTurbo,
}

// ArrayName returns the C++ identifier emitted for this theme,
// e.g. "CMRMAP_DATA".
func (t Theme) ArrayName() string {
	return strings.ToUpper(string(t)) + "_DATA"
}

var (
	// ErrSourceNotFound reports a missing or unreadable colormap source
	// file. The wrapped message carries the attempted path.
	ErrSourceNotFound = errors.New("colormap source not found")

	// ErrMalformedData reports an embedded payload that is not a JSON
	// array of RGB triplets.
	ErrMalformedData = errors.New("malformed colormap data")
)

type Config struct {
	SourcePath    string
	Marker        string
	ArrayName     string
	Theme         Theme
	Entries       int
	PreviewPath   string
	PreviewHeight int
	BatchDir      string
	MaxCpuCount   int
	DebugMode     bool
}
