package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/madstone-tech/toon/internal/adapters/jsontext"
	"github.com/madstone-tech/toon/internal/codec"
)

// EncodeCommand converts a JSON document to TOON text.
type EncodeCommand struct {
	inputPath  string
	outputPath string
	indent     int
	delimiter  string
	lenMarker  bool
}

// NewEncodeCommand creates a new encode command reading from inputPath
// ("-" for stdin).
func NewEncodeCommand(inputPath string) *EncodeCommand {
	return &EncodeCommand{inputPath: inputPath, indent: codec.DefaultIndent, delimiter: "comma"}
}

// WithOutput sets the output file path ("-" or "" for stdout).
func (ec *EncodeCommand) WithOutput(path string) *EncodeCommand {
	ec.outputPath = path
	return ec
}

// WithIndent sets the number of spaces per nesting level.
func (ec *EncodeCommand) WithIndent(spaces int) *EncodeCommand {
	ec.indent = spaces
	return ec
}

// WithDelimiter sets the delimiter name ("comma", "pipe", "tab").
func (ec *EncodeCommand) WithDelimiter(name string) *EncodeCommand {
	ec.delimiter = name
	return ec
}

// WithLengthMarker enables the '#' length-marker prefix.
func (ec *EncodeCommand) WithLengthMarker(enabled bool) *EncodeCommand {
	ec.lenMarker = enabled
	return ec
}

// Execute reads JSON from the input, encodes it as TOON, and writes the
// result to the output.
func (ec *EncodeCommand) Execute(ctx context.Context) error {
	data, err := readInput(ec.inputPath)
	if err != nil {
		return err
	}

	text, err := jsontext.FromJSONText(data,
		codec.WithIndent(ec.indent),
		codec.WithDelimiter(delimiterByName(ec.delimiter)),
		codec.WithLengthMarker(ec.lenMarker),
	)
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}

	return writeOutput(ec.outputPath, []byte(text))
}

func delimiterByName(name string) codec.Delimiter {
	switch name {
	case "pipe":
		return codec.DelimiterPipe
	case "tab":
		return codec.DelimiterTab
	default:
		return codec.DelimiterComma
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return normalizeCRLF(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return normalizeCRLF(data), nil
}

// normalizeCRLF strips a trailing '\r' before each '\n', since the scanner
// treats '\r' as ordinary line content rather than stripping it itself.
func normalizeCRLF(data []byte) []byte {
	return bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
