// Package config loads colx defaults from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults colx starts from before flags are applied.
type Config struct {
	// Delimiter is the regex that splits input lines into columns.
	Delimiter string
	// Separator joins output columns; backslash escapes are expanded later.
	Separator string
	// Color is the output color mode: auto, always or never.
	Color string
}

// yamlConfig is the on-disk YAML shape. Every field is optional.
type yamlConfig struct {
	Delimiter string `yaml:"delimiter,omitempty"`
	Separator string `yaml:"separator,omitempty"`
	Color     string `yaml:"color,omitempty"`
}

// Default returns the built-in defaults used when no config file exists.
func Default() Config {
	return Config{
		Delimiter: " ",
		Separator: " ",
		Color:     "auto",
	}
}

// Load reads defaults from an explicit YAML file. Fields missing from the
// file keep their built-in defaults. Unlike LoadDefault, a missing file is
// an error here: the caller asked for this file specifically.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return parse(data, path)
}

// LoadDefault reads defaults from the first config file present among
// $COLX_CONFIG, $XDG_CONFIG_HOME/colx/config.yml and
// ~/.config/colx/config.yml. Having no config file at all is normal and
// yields Default(); a file that exists but cannot be read or parsed
// reports its error.
func LoadDefault() (Config, error) {
	for _, path := range candidatePaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return parse(data, path)
	}
	return Default(), nil
}

func parse(data []byte, path string) (Config, error) {
	var y yamlConfig
	if err := yaml.Unmarshal(data, &y); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg := Default()
	if y.Delimiter != "" {
		cfg.Delimiter = y.Delimiter
	}
	if y.Separator != "" {
		cfg.Separator = y.Separator
	}
	if y.Color != "" {
		cfg.Color = y.Color
	}
	return cfg, nil
}

// candidatePaths lists config file locations in priority order.
func candidatePaths() []string {
	var paths []string
	if p := os.Getenv("COLX_CONFIG"); p != "" {
		paths = append(paths, p)
	}
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		paths = append(paths, filepath.Join(x, "colx", "config.yml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "colx", "config.yml"))
	}
	return paths
}
