// Package config holds the explicit settings for a discourse network run.
// Nothing here is global: callers load or construct a Config and pass it on.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/discourse-networks/pkg/logging"
	"github.com/dd0wney/discourse-networks/pkg/networks"
	"github.com/dd0wney/discourse-networks/pkg/statements"
	"github.com/dd0wney/discourse-networks/pkg/validation"
)

// Config is the full run configuration.
type Config struct {
	Columns  statements.Columns `yaml:"columns"`
	Network  networks.Options   `yaml:"network"`
	Verbose  bool               `yaml:"verbose"`
	LogLevel string             `yaml:"log_level"`
	// LogFormat is "json" or "text".
	LogFormat logging.Format `yaml:"log_format"`
}

// Default returns the configuration with the standard column names of a
// discourse network dataset: person, concept, agreement and party.
func Default() Config {
	return Config{
		Columns:   statements.DefaultColumns("person", "concept", "agreement"),
		Network:   networks.DefaultOptions(),
		Verbose:   true,
		LogLevel:  "info",
		LogFormat: logging.FormatText,
	}
}

// Parse decodes YAML on top of Default, so omitted keys keep their defaults,
// then validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Validate checks struct tags first, then cross-field rules.
func (c Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}

	return validation.NewConfigValidator("Config").
		Distinct(map[string]string{
			"Columns.Actor":     c.Columns.Actor,
			"Columns.Concept":   c.Columns.Concept,
			"Columns.Qualifier": c.Columns.Qualifier,
			"Columns.Attribute": c.Columns.Attribute,
		}).
		NonNegative("Network.MinConcepts", c.Network.MinConcepts).
		When(c.LogLevel != "", func(cv *validation.ConfigValidator) {
			cv.OneOf("LogLevel", c.LogLevel, []string{"debug", "info", "warn", "error"})
		}).
		OneOf("LogFormat", string(c.LogFormat), []string{string(logging.FormatJSON), string(logging.FormatText)}).
		Validate()
}

// Logger returns a stderr logger with the configured level and format.
func (c Config) Logger() logging.Logger {
	return logging.New(os.Stderr, logging.ParseLevel(c.LogLevel), c.LogFormat)
}
