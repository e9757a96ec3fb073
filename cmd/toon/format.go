package main

import (
	"context"
	"fmt"

	"github.com/madstone-tech/toon/internal/adapters/fileio"
	"github.com/madstone-tech/toon/internal/codec"
)

// FormatCommand rewrites a TOON file under a new indent, delimiter, or
// length-marker setting, decoding and re-encoding it in place.
type FormatCommand struct {
	path         string
	indent       int
	delimiter    string
	lengthMarker bool
}

// NewFormatCommand creates a new format command over path.
func NewFormatCommand(path string) *FormatCommand {
	return &FormatCommand{path: path, indent: codec.DefaultIndent, delimiter: "comma"}
}

// WithIndent sets the number of spaces per nesting level.
func (fc *FormatCommand) WithIndent(spaces int) *FormatCommand {
	fc.indent = spaces
	return fc
}

// WithDelimiter sets the delimiter name ("comma", "pipe", "tab").
func (fc *FormatCommand) WithDelimiter(name string) *FormatCommand {
	fc.delimiter = name
	return fc
}

// WithLengthMarker enables the '#' length-marker prefix.
func (fc *FormatCommand) WithLengthMarker(enabled bool) *FormatCommand {
	fc.lengthMarker = enabled
	return fc
}

// Execute loads the file's value tree and rewrites it with the
// configured encode options.
func (fc *FormatCommand) Execute(ctx context.Context) error {
	v, err := fileio.Load(fc.path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", fc.path, err)
	}

	err = fileio.Save(fc.path, v,
		codec.WithIndent(fc.indent),
		codec.WithDelimiter(delimiterByName(fc.delimiter)),
		codec.WithLengthMarker(fc.lengthMarker),
	)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", fc.path, err)
	}
	return nil
}
