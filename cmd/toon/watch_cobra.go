package main

import "github.com/spf13/cobra"

var watchCmd = &cobra.Command{
	Use:     "watch <file>",
	Aliases: []string{"w"},
	Short:   "Watch a file and re-validate or re-encode on change",
	Long: `Watch a single JSON or TOON file. On every write, a .toon source is
re-validated and a .json source is re-encoded as TOON, reporting the
outcome until interrupted.`,
	GroupID: "tools",
	Args:    cobra.ExactArgs(1),
	Example: `  toon watch data.toon
  toon watch data.json --to toon`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().String("to", "", "conversion target format override: json or toon")
}

func runWatch(cmd *cobra.Command, args []string) error {
	watchCommand := NewWatchCommand(args[0])

	if to, _ := cmd.Flags().GetString("to"); to != "" {
		watchCommand.WithTarget(to)
	}

	return watchCommand.Execute(cmd.Context())
}
