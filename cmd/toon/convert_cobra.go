package main

import "github.com/spf13/cobra"

var convertCmd = &cobra.Command{
	Use:     "convert <input> [output]",
	Aliases: []string{"conv"},
	Short:   "Convert between JSON and TOON by file extension",
	Long: `Convert a file between JSON and TOON. The direction is inferred from the
input and output file extensions unless --from/--to override it. With
--compare, no file is written; instead a TOON-vs-JSON byte size report
is printed.`,
	GroupID: "core",
	Args:    cobra.RangeArgs(1, 2),
	Example: `  toon convert data.json data.toon
  toon convert data.toon data.json
  toon convert data.json --compare`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().String("from", "", "input format override: json or toon")
	convertCmd.Flags().String("to", "", "output format override: json or toon")
	convertCmd.Flags().Bool("compare", false, "print a size comparison instead of writing output")
	convertCmd.Flags().Int("indent", 2, "spaces per nesting level for TOON output")
	convertCmd.Flags().String("delimiter", "comma", "cell delimiter for TOON output: comma, pipe, or tab")
}

func runConvert(cmd *cobra.Command, args []string) error {
	output := ""
	if len(args) == 2 {
		output = args[1]
	}

	convertCommand := NewConvertCommand(args[0], output)

	if from, _ := cmd.Flags().GetString("from"); from != "" {
		convertCommand.WithFrom(from)
	}
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		convertCommand.WithTo(to)
	}
	if compare, _ := cmd.Flags().GetBool("compare"); compare {
		convertCommand.WithCompare(true)
	}
	if indent, _ := cmd.Flags().GetInt("indent"); indent != 2 {
		convertCommand.WithIndent(indent)
	}
	if delim, _ := cmd.Flags().GetString("delimiter"); delim != "comma" {
		convertCommand.WithDelimiter(delim)
	}

	return convertCommand.Execute(cmd.Context())
}
