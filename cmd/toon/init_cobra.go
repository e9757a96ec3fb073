package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:     "init",
	Short:   "Write a default .toonrc.toml",
	Long:    "Create a .toonrc.toml configuration file in the project root with the Core Profile defaults.",
	GroupID: "tools",
	Args:    cobra.NoArgs,
	Example: `  toon init
  toon init --project ./myproject --delimiter pipe`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Int("indent", 2, "spaces per nesting level")
	initCmd.Flags().String("delimiter", "comma", "cell delimiter: comma, pipe, or tab")
}

func runInit(cmd *cobra.Command, args []string) error {
	initCommand := NewInitCommand(ProjectRoot)

	if indent, _ := cmd.Flags().GetInt("indent"); indent != 2 {
		initCommand.WithIndent(indent)
	}
	if delim, _ := cmd.Flags().GetString("delimiter"); delim != "comma" {
		initCommand.WithDelimiter(delim)
	}

	if err := initCommand.Execute(cmd.Context()); err != nil {
		return err
	}

	fmt.Printf("✓ wrote %s/.toonrc.toml\n", ProjectRoot)
	return nil
}
