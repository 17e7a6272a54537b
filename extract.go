package cmapgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMarker delimits the embedded JSON payload in the Python
// colormap module (a triple-quoted string literal).
const DefaultMarker = `"""`

// DefaultSourcePath is the historical location of the Python colormap
// module relative to the installed binary: two directories up, then
// into the plotting package.
func DefaultSourcePath() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}
	return filepath.Join(filepath.Dir(exe), "..", "..", "friture", "plotting", "generated_cmrmap.py")
}

// ReadSource reads the colormap source file as text. A missing or
// unreadable file is reported as ErrSourceNotFound with the attempted
// path. Content that is not valid UTF-8 is decoded with the fallback
// charmap decoder.
func ReadSource(sourcePath string) (string, error) {
	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
	}
	return decodeText(raw)
}

// ExtractPayload returns the text strictly between the end of the first
// and the start of the last occurrence of marker in content. Fewer than
// two occurrences is malformed input.
func ExtractPayload(content, marker string) (string, error) {
	if marker == "" {
		marker = DefaultMarker
	}

	first := strings.Index(content, marker)
	if first == -1 {
		return "", fmt.Errorf("%w: no %q marker in source", ErrMalformedData, marker)
	}
	start := first + len(marker)

	// The closing marker must begin at or after the end of the opening
	// one; a last occurrence overlapping the first means there is only
	// one usable marker in the file.
	end := strings.LastIndex(content, marker)
	if end < start {
		return "", fmt.Errorf("%w: missing closing %q marker", ErrMalformedData, marker)
	}

	return content[start:end], nil
}
