package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:     "format <file>",
	Aliases: []string{"fmt"},
	Short:   "Reformat a TOON file in place",
	Long:    "Decode a TOON file and rewrite it under a new indent, delimiter, or length-marker setting.",
	GroupID: "tools",
	Args:    cobra.ExactArgs(1),
	Example: `  toon format data.toon --indent 4
  toon format data.toon --delimiter pipe --length-marker`,
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().Int("indent", 2, "spaces per nesting level")
	formatCmd.Flags().String("delimiter", "comma", "cell delimiter: comma, pipe, or tab")
	formatCmd.Flags().Bool("length-marker", false, "prefix array lengths with '#'")
}

func runFormat(cmd *cobra.Command, args []string) error {
	formatCommand := NewFormatCommand(args[0])

	if indent, _ := cmd.Flags().GetInt("indent"); indent != 2 {
		formatCommand.WithIndent(indent)
	}
	if delim, _ := cmd.Flags().GetString("delimiter"); delim != "comma" {
		formatCommand.WithDelimiter(delim)
	}
	if marker, _ := cmd.Flags().GetBool("length-marker"); marker {
		formatCommand.WithLengthMarker(true)
	}

	if err := formatCommand.Execute(cmd.Context()); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
