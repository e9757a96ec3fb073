package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:     "validate <file>...",
	Aliases: []string{"val"},
	Short:   "Validate one or more TOON files",
	Long:    "Check that each file decodes as a well-formed TOON document without printing its contents.",
	GroupID: "core",
	Args:    cobra.MinimumNArgs(1),
	Example: `  toon validate data.toon
  toon validate *.toon --exit-code
  toon validate data.toon --no-strict`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("no-strict", false, "disable count-mismatch and blank-line diagnostics")
	validateCmd.Flags().Bool("exit-code", false, "exit with non-zero status if any file fails validation")
}

func runValidate(cmd *cobra.Command, args []string) error {
	validateCommand := NewValidateCommand(args)

	if noStrict, _ := cmd.Flags().GetBool("no-strict"); noStrict {
		validateCommand.WithStrict(false)
	}
	if exitCode, _ := cmd.Flags().GetBool("exit-code"); exitCode {
		validateCommand.WithExitCode(true)
	}

	if err := validateCommand.Execute(cmd.Context()); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
