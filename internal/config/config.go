// Package config handles loading and validation of callprof configuration
// files. Configuration only affects rendering and CLI defaults; the core
// profiler needs none of it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SupportedConfigNames contains supported configuration file names, in
// order of preference.
var SupportedConfigNames = []string{
	".callprof.yml",
	".callprof.yaml",
	".callprof.toml",
	".callprof.json",
}

// Render holds the styling options passed through to the table and gantt
// renderers. Colors are ANSI or hex values understood by lipgloss; they
// carry no meaning for the core.
type Render struct {
	Width int    `koanf:"width"` // width of the gantt bar area, in cells
	Fill  string `koanf:"fill"`  // bar fill color
	Edge  string `koanf:"edge"`  // table border and axis color
	Label string `koanf:"label"` // lane label and header color
	Shade bool   `koanf:"shade"` // draw bars with a lighter shade block
}

// Config is the root callprof configuration.
type Config struct {
	OrderBy  string `koanf:"order_by"`
	Reverse  bool   `koanf:"reverse"`
	FullName bool   `koanf:"full_name"`
	LogLevel string `koanf:"log_level"`
	Render   Render `koanf:"render"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		OrderBy:  "name",
		LogLevel: "warn",
		Render: Render{
			Width: 60,
			Fill:  "6",
			Edge:  "8",
			Label: "15",
		},
	}
}

// FindConfig returns the path of the first supported config file in dir,
// or false when there is none.
func FindConfig(dir string) (string, bool) {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Load reads a config file, overlaying it on the defaults. The parser is
// chosen by file extension.
func Load(path string) (Config, error) {
	cfg := Default()

	parser, err := parserFor(path)
	if err != nil {
		return cfg, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return kyaml.Parser(), nil
	case ".toml":
		return ktoml.Parser(), nil
	case ".json":
		return kjson.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
}
