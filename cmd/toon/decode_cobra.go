package main

import "github.com/spf13/cobra"

var decodeCmd = &cobra.Command{
	Use:     "decode [file]",
	Aliases: []string{"dec"},
	Short:   "Decode TOON as JSON",
	Long:    "Read a TOON document (file or stdin) and print its JSON equivalent.",
	GroupID: "core",
	Args:    cobra.MaximumNArgs(1),
	Example: `  toon decode data.toon
  cat data.toon | toon decode
  toon decode data.toon --no-strict`,
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	decodeCmd.Flags().Int("indent", 2, "expected spaces per nesting level")
	decodeCmd.Flags().Bool("no-strict", false, "disable count-mismatch and blank-line diagnostics")
}

func runDecode(cmd *cobra.Command, args []string) error {
	input := "-"
	if len(args) == 1 {
		input = args[0]
	}

	decodeCommand := NewDecodeCommand(input)

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		decodeCommand.WithOutput(output)
	}
	if indent, _ := cmd.Flags().GetInt("indent"); indent != 2 {
		decodeCommand.WithIndent(indent)
	}
	if noStrict, _ := cmd.Flags().GetBool("no-strict"); noStrict {
		decodeCommand.WithStrict(false)
	}

	return decodeCommand.Execute(cmd.Context())
}
