package cmapgen

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/davidbyttow/govips/v2/vips"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/encoding/charmap"
)

const DefaultFilePerm = 0644

var defaultDecoder = charmap.Windows1252.NewDecoder()

// decodeText returns raw as a string, running it through the fallback
// charmap decoder when it is not valid UTF-8.
func decodeText(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, err := defaultDecoder.Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode source text: %w", err)
	}
	return string(decoded), nil
}

// writeFileAtomic writes data next to output under a scratch name and
// renames it into place, so a killed run never leaves a truncated
// header behind.
func writeFileAtomic(output string, data []byte) error {
	tmp := filepath.Join(filepath.Dir(output), uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, data, DefaultFilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, output); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func createImage(w, h int, c colorful.Color) (*vips.ImageRef, error) {

	var cR, cG, cB uint8 = c.RGB255()
	color := []float64{float64(cR), float64(cG), float64(cB)}

	imageRef, err := vips.Black(w, h)
	if err != nil {
		return nil, err
	}
	err = imageRef.ToColorSpace(vips.InterpretationSRGB)
	if err != nil {
		return nil, err
	}

	err = imageRef.Linear([]float64{0, 0, 0}, color)
	if err != nil {
		return nil, err
	}

	return imageRef, nil
}

func toPng(ref *vips.ImageRef, output string) error {
	buffer, _, err := ref.ExportPng(vips.NewPngExportParams())
	if err != nil {
		return err
	}

	return os.WriteFile(output, buffer, DefaultFilePerm)
}
