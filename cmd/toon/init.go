package main

import (
	"context"
	"fmt"

	"github.com/madstone-tech/toon/internal/adapters/config"
)

// InitCommand writes a default .toonrc.toml into a project root.
type InitCommand struct {
	projectRoot  string
	indent       int
	delimiter    string
	lengthMarker bool
	strict       bool
}

// NewInitCommand creates a new init command targeting projectRoot.
func NewInitCommand(projectRoot string) *InitCommand {
	defaults := config.Default()
	return &InitCommand{
		projectRoot:  projectRoot,
		indent:       defaults.Indent,
		delimiter:    defaults.Delimiter,
		lengthMarker: defaults.LengthMarker,
		strict:       defaults.Strict,
	}
}

// WithIndent overrides the default indent written to the config file.
func (ic *InitCommand) WithIndent(spaces int) *InitCommand {
	ic.indent = spaces
	return ic
}

// WithDelimiter overrides the default delimiter written to the config file.
func (ic *InitCommand) WithDelimiter(name string) *InitCommand {
	ic.delimiter = name
	return ic
}

// Execute writes <projectRoot>/.toonrc.toml.
func (ic *InitCommand) Execute(ctx context.Context) error {
	cfg := config.Config{
		Indent:       ic.indent,
		Delimiter:    ic.delimiter,
		LengthMarker: ic.lengthMarker,
		Strict:       ic.strict,
	}
	if err := config.Save(ic.projectRoot, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
