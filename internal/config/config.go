// Package config loads settings of the riemann command from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

var errPlacesRange = errors.New("places out of range")

// MaxPlaces is the largest number of decimal places results can be rounded to.
const MaxPlaces = 15

// Config holds settings of the riemann command.
type Config struct {
	// Places rounds results to this many digits after the decimal point.
	// A negative value disables rounding.
	Places int `toml:"places" yaml:"places"`

	// Color enables styled output.
	Color bool `toml:"color" yaml:"color"`

	// Polar additionally prints the magnitude and the angle of results.
	Polar bool `toml:"polar" yaml:"polar"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Places: -1,
		Color:  true,
		Polar:  false,
	}
}

// Load reads settings from path.
// The format is detected from the file extension.
// Settings missing from the file keep their default values.
func Load(path string) (Config, error) {
	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(content, DetectFormat(path))
}

// Parse decodes settings from content.
func Parse(content []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported format: %v", format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that settings are within their ranges.
func (c Config) Validate() error {
	if c.Places > MaxPlaces {
		return fmt.Errorf("places = %v, at most %v: %w", c.Places, MaxPlaces, errPlacesRange)
	}
	return nil
}

// DetectFormat determines the configuration format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
