package xlsplit

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config holds split settings loaded from a YAML file:
//
//	sheet: Report
//	axis: vertical
//	side: before
//	gap: 2
type Config struct {
	Sheet string `yaml:"sheet"`
	Axis  string `yaml:"axis"`
	Side  string `yaml:"side"`
	Gap   *int   `yaml:"gap"`
}

// LoadConfig decodes a YAML config. Unknown keys are rejected; an empty
// document yields the zero Config.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if _, err := cfg.SplitAxis(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if _, err := cfg.SplitSide(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Gap != nil && *cfg.Gap < 0 {
		return nil, fmt.Errorf("config: gap must not be negative, got %d", *cfg.Gap)
	}
	return &cfg, nil
}

// SplitAxis parses the configured axis.
func (c *Config) SplitAxis() (Axis, error) { return ParseAxis(c.Axis) }

// SplitSide parses the configured side.
func (c *Config) SplitSide() (Side, error) { return ParseSide(c.Side) }

// Options returns the editor options the config sets.
func (c *Config) Options() []Option {
	var opts []Option
	if c.Gap != nil {
		opts = append(opts, WithGap(*c.Gap))
	}
	return opts
}
