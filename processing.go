package cmapgen

import (
	"fmt"
	"io"
	"log"
)

// Processing runs the linear extract pipeline: locate the source file,
// slice the embedded payload out of it, parse and validate the table,
// then write the array literal to w. Nothing reaches w until the table
// has parsed cleanly.
func Processing(w io.Writer, c *Config) (Table, error) {

	sourcePath := c.SourcePath
	if sourcePath == "" {
		sourcePath = DefaultSourcePath()
	}
	if c.DebugMode {
		log.Println("[>] Reading colormap source:", sourcePath)
	}

	content, err := ReadSource(sourcePath)
	if err != nil {
		return nil, err
	}

	payload, err := ExtractPayload(content, c.Marker)
	if err != nil {
		return nil, err
	}

	table, err := ParseTable(payload)
	if err != nil {
		return nil, err
	}

	opts := EmitOptions{ArrayName: c.ArrayName}
	if err = Emit(w, table, opts); err != nil {
		return nil, err
	}

	return table, nil
}

// Generate is the theme counterpart of Processing: it synthesizes the
// table instead of extracting it and emits with theme-derived headers.
func Generate(w io.Writer, c *Config) (Table, error) {

	entries := c.Entries
	if entries <= 0 {
		entries = 256
	}

	table, err := GenerateTheme(c.Theme, entries)
	if err != nil {
		return nil, err
	}

	arrayName := c.ArrayName
	if arrayName == "" {
		arrayName = c.Theme.ArrayName()
	}
	opts := EmitOptions{
		ArrayName:   arrayName,
		Label:       fmt.Sprintf("%s data", c.Theme),
		Provenance:  fmt.Sprintf("Generated by cmapgen (%s theme)", c.Theme),
		Description: ThemeDescription(c.Theme),
		Rows:        entries,
	}
	if err = Emit(w, table, opts); err != nil {
		return nil, err
	}

	return table, nil
}
