package cmapgen

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"time"

	"github.com/alitto/pond"
)

// EmitThemes generates every theme in themes and writes each one as a
// header file <theme>_data.h under outputDir. The extract path stays
// strictly synchronous; only this batch mode fans out on a pool.
func EmitThemes(themes []Theme, outputDir string, c *Config) error {
	st := time.Now()
	log.Println("[>] Emit themes to:", outputDir)

	if err := os.MkdirAll(outputDir, 0777); err != nil {
		return err
	}

	entries := c.Entries
	if entries <= 0 {
		entries = 256
	}
	workers := c.MaxCpuCount
	if workers <= 0 {
		workers = 4
	}

	// Stdout carries generated code in some modes, so task noise has
	// to stay on the error stream.
	panicHandler := func(p interface{}) {
		log.Printf("[!] Task panicked: %v", p)
	}
	pool := pond.New(workers, 1000, pond.MinWorkers(workers), pond.PanicHandler(panicHandler))

	for _, theme := range themes {
		pool.Submit(func() {
			if err := emitThemeFile(theme, outputDir, entries); err != nil {
				panic(err)
			}
		})
	}

	pool.StopAndWait()
	if pool.FailedTasks() > 0 {
		return errors.New("error on emit themes")
	}

	log.Printf("[<] Emit themes, at %s", time.Since(st))
	return nil
}

func emitThemeFile(theme Theme, outputDir string, entries int) error {
	table, err := GenerateTheme(theme, entries)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	opts := EmitOptions{
		ArrayName:   theme.ArrayName(),
		Label:       fmt.Sprintf("%s data", theme),
		Provenance:  fmt.Sprintf("Generated by cmapgen (%s theme)", theme),
		Description: ThemeDescription(theme),
		Rows:        entries,
	}
	if err = Emit(&buf, table, opts); err != nil {
		return err
	}

	output := path.Join(outputDir, fmt.Sprintf("%s_data.h", theme))
	if err = writeFileAtomic(output, buf.Bytes()); err != nil {
		return err
	}

	log.Printf("[*] %s: %d entries", output, len(table))
	return nil
}
