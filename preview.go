package cmapgen

import (
	"fmt"
	"log"
	"time"

	"github.com/davidbyttow/govips/v2/vips"
	"github.com/lucasb-eyer/go-colorful"
)

// Preview renders the table as a horizontal color ramp and writes it as
// a PNG, one pixel column per entry. Requires a started vips runtime.
func Preview(table Table, output string, height int) error {
	if len(table) == 0 {
		return fmt.Errorf("empty table")
	}
	if height <= 0 {
		height = 40
	}

	st := time.Now()
	log.Println("[>] Render preview:", output)

	targetRef, err := vips.Black(len(table), height)
	if err != nil {
		return err
	}
	defer targetRef.Close()

	if err = targetRef.ToColorSpace(vips.InterpretationSRGB); err != nil {
		return err
	}

	for x, rgb := range table {
		colRef, err := createImage(1, height, colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]})
		if err != nil {
			return err
		}
		if err = targetRef.Insert(colRef, x, 0, false, nil); err != nil {
			colRef.Close()
			return err
		}
		colRef.Close()
	}

	if err = toPng(targetRef, output); err != nil {
		return err
	}

	log.Printf("[<] Render preview, at %s", time.Since(st))
	return nil
}
