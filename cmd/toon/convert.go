package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/madstone-tech/toon/internal/adapters/cli"
	"github.com/madstone-tech/toon/internal/adapters/jsontext"
	"github.com/madstone-tech/toon/internal/adapters/sizecmp"
	"github.com/madstone-tech/toon/internal/adapters/typed"
	"github.com/madstone-tech/toon/internal/codec"
)

// ConvertCommand converts a file between JSON and TOON, inferring
// direction from file extensions unless told otherwise.
type ConvertCommand struct {
	inputPath  string
	outputPath string
	from       string // "json", "toon", or "" to infer
	to         string
	compare    bool
	indent     int
	delimiter  string
}

// NewConvertCommand creates a new convert command.
func NewConvertCommand(inputPath, outputPath string) *ConvertCommand {
	return &ConvertCommand{inputPath: inputPath, outputPath: outputPath, indent: codec.DefaultIndent, delimiter: "comma"}
}

// WithFrom overrides the inferred input format ("json" or "toon").
func (cc *ConvertCommand) WithFrom(format string) *ConvertCommand {
	cc.from = format
	return cc
}

// WithTo overrides the inferred output format ("json" or "toon").
func (cc *ConvertCommand) WithTo(format string) *ConvertCommand {
	cc.to = format
	return cc
}

// WithCompare enables printing a TOON-vs-JSON size report instead of
// writing the converted output.
func (cc *ConvertCommand) WithCompare(enabled bool) *ConvertCommand {
	cc.compare = enabled
	return cc
}

// WithIndent sets the number of spaces per nesting level for TOON output.
func (cc *ConvertCommand) WithIndent(spaces int) *ConvertCommand {
	cc.indent = spaces
	return cc
}

// WithDelimiter sets the delimiter name used for TOON output.
func (cc *ConvertCommand) WithDelimiter(name string) *ConvertCommand {
	cc.delimiter = name
	return cc
}

// Execute reads the input, converts it, and writes the result (or, in
// compare mode, prints a size report).
func (cc *ConvertCommand) Execute(ctx context.Context) error {
	from := cc.from
	if from == "" {
		from = formatForExt(cc.inputPath, "json")
	}

	data, err := readInput(cc.inputPath)
	if err != nil {
		return err
	}

	if cc.compare {
		return cc.runCompare(from, data)
	}

	to := cc.to
	if to == "" {
		to = formatForExt(cc.outputPath, oppositeFormat(from))
	}

	switch {
	case from == "json" && to == "toon":
		text, err := jsontext.FromJSONText(data, codec.WithIndent(cc.indent), codec.WithDelimiter(delimiterByName(cc.delimiter)))
		if err != nil {
			return fmt.Errorf("failed to convert: %w", err)
		}
		return writeOutput(cc.outputPath, []byte(text))

	case from == "toon" && to == "json":
		out, err := jsontext.ToJSONText(string(data))
		if err != nil {
			return fmt.Errorf("failed to convert: %w", err)
		}
		return writeOutput(cc.outputPath, out)

	default:
		return fmt.Errorf("unsupported conversion: %s to %s", from, to)
	}
}

func (cc *ConvertCommand) runCompare(from string, data []byte) error {
	var host any
	switch from {
	case "json":
		if err := json.Unmarshal(data, &host); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	case "toon":
		v, err := codec.Decode(string(data), codec.DefaultDecodeOptions())
		if err != nil {
			return fmt.Errorf("failed to parse TOON: %w", err)
		}
		host = typed.ToHost(v)
	default:
		return fmt.Errorf("unsupported format: %s", from)
	}

	report, err := sizecmp.Compare(host, codec.WithIndent(cc.indent), codec.WithDelimiter(delimiterByName(cc.delimiter)))
	if err != nil {
		return fmt.Errorf("failed to compare: %w", err)
	}
	cli.NewReportFormatter().PrintSizeReport(report)
	return nil
}

func formatForExt(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".toon":
		return "toon"
	default:
		return fallback
	}
}

func oppositeFormat(format string) string {
	if format == "json" {
		return "toon"
	}
	return "json"
}
