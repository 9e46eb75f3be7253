// Package config loads user defaults for the isaw CLI from a YAML (or JSON) file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Color modes accepted by the "color" key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the defaults a user can persist between runs.
// Command-line flags always take precedence over these values.
type Config struct {
	// Dictionary is the word list used by the words command.
	Dictionary string `mapstructure:"dictionary"`
	// Letters is the alphabet used by the search command when none is given.
	Letters string `mapstructure:"letters"`
	// Limit caps the number of printed results. Zero means unlimited.
	Limit       int    `mapstructure:"limit"`
	Color       string `mapstructure:"color"`
	Debug       bool   `mapstructure:"debug"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Color:     ColorAuto,
		LogFormat: "text",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/isaw/config.yaml (or the platform equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "isaw", "config.yaml")
}

// Load reads the configuration file at path.
// A missing file yields Default() unless explicit is set, in which case it is an error.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode applies raw key/value pairs on top of cfg and validates the result.
// Unknown keys are rejected so typos do not go unnoticed.
func Decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never (got %q)", c.Color)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json (got %q)", c.LogFormat)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative (got %d)", c.Limit)
	}
	return nil
}
