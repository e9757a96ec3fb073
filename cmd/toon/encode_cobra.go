package main

import "github.com/spf13/cobra"

var encodeCmd = &cobra.Command{
	Use:     "encode [file]",
	Aliases: []string{"enc"},
	Short:   "Encode JSON as TOON",
	Long:    "Read a JSON document (file or stdin) and print its TOON encoding.",
	GroupID: "core",
	Args:    cobra.MaximumNArgs(1),
	Example: `  toon encode data.json
  cat data.json | toon encode
  toon encode data.json --output data.toon --delimiter pipe`,
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	encodeCmd.Flags().Int("indent", 2, "spaces per nesting level")
	encodeCmd.Flags().String("delimiter", "comma", "cell delimiter: comma, pipe, or tab")
	encodeCmd.Flags().Bool("length-marker", false, "prefix array lengths with '#'")
}

func runEncode(cmd *cobra.Command, args []string) error {
	input := "-"
	if len(args) == 1 {
		input = args[0]
	}

	encodeCommand := NewEncodeCommand(input)

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		encodeCommand.WithOutput(output)
	}
	if indent, _ := cmd.Flags().GetInt("indent"); indent != 2 {
		encodeCommand.WithIndent(indent)
	}
	if delim, _ := cmd.Flags().GetString("delimiter"); delim != "comma" {
		encodeCommand.WithDelimiter(delim)
	}
	if marker, _ := cmd.Flags().GetBool("length-marker"); marker {
		encodeCommand.WithLengthMarker(true)
	}

	return encodeCommand.Execute(cmd.Context())
}
