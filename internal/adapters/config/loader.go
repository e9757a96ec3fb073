// Package config loads and saves the toon CLI's persisted configuration,
// .toonrc.toml, mirroring the precedence loko.toml used: a project-local
// file overrides a global one in $HOME.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/madstone-tech/toon/internal/codec"
)

// Config is the CLI's persisted configuration.
type Config struct {
	Indent       int    `mapstructure:"indent" toml:"indent"`
	Delimiter    string `mapstructure:"delimiter" toml:"delimiter"` // "comma", "pipe", or "tab"
	LengthMarker bool   `mapstructure:"length_marker" toml:"length_marker"`
	Strict       bool   `mapstructure:"strict" toml:"strict"`
}

// Default returns the Core Profile defaults.
func Default() Config {
	return Config{Indent: codec.DefaultIndent, Delimiter: "comma", LengthMarker: false, Strict: true}
}

// DelimiterValue resolves the configured delimiter name to its codec.Delimiter,
// falling back to comma for an unrecognized or empty name.
func (c Config) DelimiterValue() codec.Delimiter {
	switch c.Delimiter {
	case "pipe":
		return codec.DelimiterPipe
	case "tab":
		return codec.DelimiterTab
	default:
		return codec.DelimiterComma
	}
}

// Loader reads .toonrc.toml from the global config directory and from a
// project root, project-local settings overriding global ones.
type Loader struct {
	globalConfigPath string
}

// NewLoader builds a Loader pointed at ~/.toonrc.toml for the global layer.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	path := ""
	if home != "" {
		path = filepath.Join(home, ".toonrc.toml")
	}
	return &Loader{globalConfigPath: path}
}

// Load merges the global and project-local .toonrc.toml files over the
// Core Profile defaults via viper, so CLI flags can later override the
// result without needing to know whether a value came from a file.
func (l *Loader) Load(projectRoot string) (Config, error) {
	cfg := Default()

	if l.globalConfigPath != "" {
		if _, err := os.Stat(l.globalConfigPath); err == nil {
			if err := mergeFile(l.globalConfigPath, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	projectConfigPath := filepath.Join(projectRoot, ".toonrc.toml")
	if _, err := os.Stat(projectConfigPath); err == nil {
		if err := mergeFile(projectConfigPath, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to load project config: %w", err)
		}
	}

	return cfg, nil
}

// LoadFile reads a single TOML file at path over the Core Profile
// defaults, for callers that name an explicit config file rather than
// relying on the global/project-root search Load performs.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if err := mergeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load config file: %w", err)
	}
	return cfg, nil
}

func mergeFile(path string, cfg *Config) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}
	return v.Unmarshal(cfg)
}

// Save persists cfg to <projectRoot>/.toonrc.toml.
func Save(projectRoot string, cfg Config) error {
	if err := os.MkdirAll(projectRoot, 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	configPath := filepath.Join(projectRoot, ".toonrc.toml")
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString("# toon CLI configuration\n\n"); err != nil {
		return err
	}
	_, err = f.Write(data)
	return err
}
