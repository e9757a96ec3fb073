// Package main implements the toon CLI command tree using Cobra.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/madstone-tech/toon/internal/adapters/config"
	"github.com/madstone-tech/toon/internal/adapters/logging"
)

// Build-time version information, set via SetVersionInfo from main().
var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// Persistent flag values accessible to all subcommands.
var (
	cfgFile     string
	ProjectRoot string
	Verbose     bool
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "toon",
	Short: "Encode, decode, and validate Token-Oriented Object Notation",
	Long: `toon converts between JSON and TOON (Token-Oriented Object Notation),
a compact, line-oriented, indentation-sensitive format designed to use
fewer tokens than JSON when a value is passed to an LLM prompt.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if Verbose {
			logging.SetLevel(logging.LevelDebug)
		}
		return initConfig()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a .toonrc.toml file (env: TOON_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&ProjectRoot, "project", "p", ".", "project root to search for .toonrc.toml")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "Core"},
		&cobra.Group{ID: "tools", Title: "Tools"},
	)
}

// Execute runs the root command. This is the entry point called from main().
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets build-time version information from ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("toon %s (commit: %s, built: %s)\n", version, commit, date))
}

// initConfig loads the file named by --config (or TOON_CONFIG), otherwise
// .toonrc.toml (global then project-local), into Viper defaults and lets
// TOON_* environment variables override them in Viper. No CLI flag is bound
// to Viper, and the subcommands take their options from their own flags,
// not from these Viper values.
func initConfig() error {
	var cfg config.Config

	if cfgFile == "" {
		cfgFile = os.Getenv("TOON_CONFIG")
	}
	if cfgFile != "" {
		loaded, err := config.LoadFile(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
		cfg = loaded
	} else {
		loaded, err := config.NewLoader().Load(ProjectRoot)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	viper.SetDefault("indent", cfg.Indent)
	viper.SetDefault("delimiter", cfg.Delimiter)
	viper.SetDefault("length_marker", cfg.LengthMarker)
	viper.SetDefault("strict", cfg.Strict)

	viper.SetEnvPrefix("TOON")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	return nil
}
