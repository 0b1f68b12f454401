package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/bjornharrtell/geojson"
	"github.com/bjornharrtell/geojson/internal/h3geo"
	"github.com/bjornharrtell/geojson/internal/logutil"
)

// Options are the global flags shared by all subcommands.
type Options struct {
	Logger logutil.Options `group:"Logger options"`

	Validate     ValidateCmd     `command:"validate" description:"Check a GeoJSON document and report the first classified error"`
	Canonicalize CanonicalizeCmd `command:"canonicalize" description:"Re-emit a GeoJSON document in canonical form"`
	Convert      ConvertCmd      `command:"convert" description:"Convert a GeoJSON document to JSON or YAML"`
	Cells        CellsCmd        `command:"cells" description:"List H3 cells covering the document's geometries"`
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func writeOutput(path string, b []byte) error {
	if path != "" {
		return os.WriteFile(path, b, 0o644)
	}
	_, err := os.Stdout.Write(b)
	return err
}

// ValidateCmd parses the input and reports success or the classified error.
type ValidateCmd struct {
	Input string `short:"i" long:"in" description:"Input file path. Reads from stdin if empty"`
}

func (c *ValidateCmd) Execute(_ []string) error {
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}
	if _, err := geojson.Parse(data); err != nil {
		if ge, ok := geojson.AsError(err); ok {
			log.Error().
				Str("code", ge.Code).
				Str("path", ge.Path).
				Str("detail", ge.Message).
				Msg("Document is not valid GeoJSON")
		}
		return err
	}
	log.Info().Msg("Document is valid GeoJSON")
	return nil
}

// CanonicalizeCmd round-trips the input through the codec and emits the
// canonical text form.
type CanonicalizeCmd struct {
	Input  string `short:"i" long:"in" description:"Input file path. Reads from stdin if empty"`
	Output string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
}

func (c *CanonicalizeCmd) Execute(_ []string) error {
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}
	doc, err := geojson.Parse(data)
	if err != nil {
		return err
	}
	out, err := geojson.Encode(doc)
	if err != nil {
		return err
	}
	return writeOutput(c.Output, append(out, '\n'))
}

// ConvertCmd emits the parsed document as JSON or YAML.
type ConvertCmd struct {
	Input  string `short:"i" long:"in" description:"Input file path. Reads from stdin if empty"`
	Output string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	Format string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
}

func (c *ConvertCmd) Execute(_ []string) error {
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}
	doc, err := geojson.Parse(data)
	if err != nil {
		return err
	}
	var out []byte
	switch c.Format {
	case "yaml":
		out, err = encodeYAML(doc.EncodeObject())
	default:
		out, err = geojson.Encode(doc)
		out = append(out, '\n')
	}
	if err != nil {
		return err
	}
	return writeOutput(c.Output, out)
}

// CellsCmd lists the H3 cells covering the geometries of the input document.
type CellsCmd struct {
	Input      string `short:"i" long:"in" description:"Input file path. Reads from stdin if empty"`
	Resolution int    `short:"r" long:"resolution" description:"H3 resolution (0-15)" default:"9"`
	Compact    bool   `long:"compact" description:"Compact the cell set across resolutions"`
}

func (c *CellsCmd) Execute(_ []string) error {
	if c.Resolution < 0 || c.Resolution > 15 {
		return fmt.Errorf("resolution must be in 0..15, got %d", c.Resolution)
	}
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}
	doc, err := geojson.Parse(data)
	if err != nil {
		return err
	}
	geometries := collectGeometries(doc)
	for _, g := range geometries {
		cells, err := h3geo.GeometryToCells(g, c.Resolution)
		if err != nil {
			log.Warn().Err(err).Msg("Skipping geometry")
			continue
		}
		if c.Compact {
			cells = h3geo.Compact(cells)
		}
		for _, cell := range cells {
			fmt.Println(cell)
		}
	}
	return nil
}

func collectGeometries(doc geojson.GeoJSON) []*geojson.Geometry {
	switch d := doc.(type) {
	case *geojson.Geometry:
		return []*geojson.Geometry{d}
	case *geojson.Feature:
		if d.Geometry == nil {
			return nil
		}
		return []*geojson.Geometry{d.Geometry}
	case *geojson.FeatureCollection:
		var out []*geojson.Geometry
		for _, f := range d.Features {
			if f.Geometry != nil {
				out = append(out, f.Geometry)
			}
		}
		return out
	}
	return nil
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		opts.Logger.Setup()
		return command.Execute(args)
	}
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		}
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
