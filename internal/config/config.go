package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config holds the optional settings of the stepc command.
type Config struct {
	// Indent is the text added per nesting level of generated code.
	Indent string `mapstructure:"indent"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// MetricsFile, when set, receives conversion metrics in Prometheus text format.
	MetricsFile string `mapstructure:"metrics_file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Indent:   "  ",
		LogLevel: "warn",
	}
}

// Load reads a YAML configuration file. Keys absent from the file keep their
// default values. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return cfg, err
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field values that the decoder cannot.
func (c Config) Validate() error {
	if c.Indent == "" {
		return fmt.Errorf("indent must not be empty")
	}
	if strings.Trim(c.Indent, " \t") != "" {
		return fmt.Errorf("indent must contain only spaces and tabs, got %q", c.Indent)
	}
	return nil
}
