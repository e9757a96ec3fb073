package main

import (
	"context"
	"fmt"

	"github.com/madstone-tech/toon/internal/adapters/jsontext"
	"github.com/madstone-tech/toon/internal/codec"
)

// DecodeCommand converts TOON text back to JSON.
type DecodeCommand struct {
	inputPath  string
	outputPath string
	indent     int
	strict     bool
}

// NewDecodeCommand creates a new decode command reading from inputPath
// ("-" for stdin).
func NewDecodeCommand(inputPath string) *DecodeCommand {
	return &DecodeCommand{inputPath: inputPath, indent: codec.DefaultIndent, strict: true}
}

// WithOutput sets the output file path ("-" or "" for stdout).
func (dc *DecodeCommand) WithOutput(path string) *DecodeCommand {
	dc.outputPath = path
	return dc
}

// WithIndent sets the expected indentation step.
func (dc *DecodeCommand) WithIndent(spaces int) *DecodeCommand {
	dc.indent = spaces
	return dc
}

// WithStrict toggles strict-mode diagnostics.
func (dc *DecodeCommand) WithStrict(strict bool) *DecodeCommand {
	dc.strict = strict
	return dc
}

// Execute reads TOON from the input, decodes it, and writes the
// equivalent JSON to the output.
func (dc *DecodeCommand) Execute(ctx context.Context) error {
	data, err := readInput(dc.inputPath)
	if err != nil {
		return err
	}

	out, err := jsontext.ToJSONText(string(data),
		codec.WithDecoderIndent(dc.indent),
		codec.WithStrictMode(dc.strict),
	)
	if err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}

	return writeOutput(dc.outputPath, out)
}
