// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all rolodex configuration.
type Config struct {
	REPL REPL `yaml:"repl"`
	UI   UI   `yaml:"ui"`
}

// REPL holds the interactive session texts.
type REPL struct {
	Prompt   string `yaml:"prompt"`
	Greeting string `yaml:"greeting"`
	Farewell string `yaml:"farewell"`
}

// UI holds terminal rendering settings.
type UI struct {
	Plain bool `yaml:"plain"` // Force plain output even on a TTY
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		REPL: REPL{
			Prompt:   "Enter a command: ",
			Greeting: "Welcome to the assistant bot!",
			Farewell: "Good bye!",
		},
		UI: UI{
			Plain: false,
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.REPL.Prompt == "" {
		return errors.New("config: repl.prompt cannot be empty")
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ROLODEX_PROMPT, ROLODEX_GREETING, ROLODEX_FAREWELL,
// ROLODEX_PLAIN.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROLODEX_PROMPT"); v != "" {
		c.REPL.Prompt = v
	}
	if v := os.Getenv("ROLODEX_GREETING"); v != "" {
		c.REPL.Greeting = v
	}
	if v := os.Getenv("ROLODEX_FAREWELL"); v != "" {
		c.REPL.Farewell = v
	}
	if v := os.Getenv("ROLODEX_PLAIN"); v != "" {
		plain, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLODEX_PLAIN %q: %w", v, err)
		}
		c.UI.Plain = plain
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	REPL *rawREPL `yaml:"repl"`
	UI   *rawUI   `yaml:"ui"`
}

type rawREPL struct {
	Prompt   *string `yaml:"prompt"`
	Greeting *string `yaml:"greeting"`
	Farewell *string `yaml:"farewell"`
}

type rawUI struct {
	Plain *bool `yaml:"plain"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.REPL != nil {
		if layer.REPL.Prompt != nil {
			c.REPL.Prompt = *layer.REPL.Prompt
		}
		if layer.REPL.Greeting != nil {
			c.REPL.Greeting = *layer.REPL.Greeting
		}
		if layer.REPL.Farewell != nil {
			c.REPL.Farewell = *layer.REPL.Farewell
		}
	}
	if layer.UI != nil {
		if layer.UI.Plain != nil {
			c.UI.Plain = *layer.UI.Plain
		}
	}
}
