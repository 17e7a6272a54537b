package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/davidbyttow/govips/v2/vips"
	"github.com/kelseyhightower/envconfig"
	"github.com/vizkit/cmapgen"
)

type Config struct {
	SourcePath    string `envconfig:"CMAPGEN_SOURCE"`
	Marker        string `envconfig:"CMAPGEN_MARKER"`
	ArrayName     string `envconfig:"CMAPGEN_ARRAY_NAME"`
	Theme         string `envconfig:"CMAPGEN_THEME"`
	Entries       int    `envconfig:"CMAPGEN_ENTRIES" default:"256"`
	PreviewPath   string `envconfig:"CMAPGEN_PREVIEW"`
	PreviewHeight int    `envconfig:"CMAPGEN_PREVIEW_H" default:"40"`
	BatchDir      string `envconfig:"CMAPGEN_BATCH_DIR"`
	MaxCpuCount   int    `envconfig:"MAX_CPU_COUNT" default:"4"`
	DebugMode     bool   `envconfig:"CMAPGEN_DEBUG" default:"false"`
}

func (c Config) MakeCmapgenConfig() *cmapgen.Config {
	return &cmapgen.Config{
		SourcePath:    c.SourcePath,
		Marker:        c.Marker,
		ArrayName:     c.ArrayName,
		Theme:         cmapgen.Theme(c.Theme),
		Entries:       c.Entries,
		PreviewPath:   c.PreviewPath,
		PreviewHeight: c.PreviewHeight,
		BatchDir:      c.BatchDir,
		MaxCpuCount:   c.MaxCpuCount,
		DebugMode:     c.DebugMode,
	}
}

func main() {

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		log.Fatalln(err)
	}

	flag.Parse()

	// The source path used to be derived from the binary's own
	// location; an explicit argument takes precedence over both the
	// environment and that legacy default.
	if flag.NArg() > 0 {
		c.SourcePath = flag.Arg(0)
	}
	if _, ok := os.LookupEnv("DEBUG"); ok {
		c.DebugMode = true
	}

	config := c.MakeCmapgenConfig()

	needVips := config.PreviewPath != ""
	if needVips {
		vips.LoggingSettings(func(messageDomain string, verbosity vips.LogLevel, message string) {}, vips.LogLevelInfo)
		vips.Startup(&vips.Config{
			ConcurrencyLevel: config.MaxCpuCount,
		})
		defer vips.Shutdown()
	}

	if config.BatchDir != "" {
		if err := cmapgen.EmitThemes(cmapgen.Themes, config.BatchDir, config); err != nil {
			log.Fatalln(err)
		}
		if config.PreviewPath != "" {
			previewBatch(config)
		}
		return
	}

	var (
		table cmapgen.Table
		err   error
	)
	if config.Theme != "" {
		table, err = cmapgen.Generate(os.Stdout, config)
	} else {
		table, err = cmapgen.Processing(os.Stdout, config)
	}
	if err != nil {
		if errors.Is(err, cmapgen.ErrSourceNotFound) {
			fmt.Fprintln(os.Stderr, "Error:", err)
			fmt.Fprintln(os.Stderr, "Make sure you're running this next to the friture checkout, or pass the path explicitly")
			os.Exit(1)
		}
		if errors.Is(err, cmapgen.ErrMalformedData) {
			fmt.Fprintln(os.Stderr, "Error parsing JSON:", err)
			os.Exit(1)
		}
		log.Fatalln(err)
	}

	fmt.Fprintf(os.Stderr, "\n// Successfully generated %d color entries\n", len(table))

	if config.PreviewPath != "" {
		if err := cmapgen.Preview(table, config.PreviewPath, config.PreviewHeight); err != nil {
			log.Fatalln(err)
		}
	}
}

func previewBatch(c *cmapgen.Config) {
	for _, theme := range cmapgen.Themes {
		table, err := cmapgen.GenerateTheme(theme, c.Entries)
		if err != nil {
			log.Fatalln(err)
		}
		output := path.Join(c.BatchDir, fmt.Sprintf("%s.png", theme))
		if err := cmapgen.Preview(table, output, c.PreviewHeight); err != nil {
			log.Fatalln(err)
		}
	}
}
