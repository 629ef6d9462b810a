// Package xconfig loads the YAML configuration the xmlcore CLI reads
// for its default parse/print policy (spec.md §6 Document options),
// so the same flags don't need repeating on every invocation.
package xconfig

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	xmlcore "github.com/arturoeanton/go-xmlcore/xml"
)

// Config mirrors the Document options spec.md §6 exposes, plus the
// printer's default compact mode, in a form a YAML file can set.
type Config struct {
	Whitespace      string `yaml:"whitespace"` // "preserve" (default) or "collapse"
	ProcessEntities *bool  `yaml:"process_entities,omitempty"`
	Compact         bool   `yaml:"compact"`
	BoolTrue        string `yaml:"bool_true"`
	BoolFalse       string `yaml:"bool_false"`
}

// Default returns the configuration the CLI falls back to when no
// config file is present.
func Default() *Config {
	return &Config{
		Whitespace: "preserve",
		BoolTrue:   "true",
		BoolFalse:  "false",
	}
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("xconfig: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("xconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg back out as YAML to path.
func Save(path string, cfg *Config) error {
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("xconfig: marshal: %w", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("xconfig: write %s: %w", path, err)
	}
	return nil
}

// DocumentOptions translates the config into the xml package's
// functional options (spec.md §6).
func (c *Config) DocumentOptions() []xmlcore.DocumentOption {
	opts := []xmlcore.DocumentOption{}

	mode := xmlcore.PreserveWhitespace
	if c.Whitespace == "collapse" {
		mode = xmlcore.CollapseWhitespace
	}
	opts = append(opts, xmlcore.WithWhitespaceMode(mode))

	if c.ProcessEntities != nil {
		opts = append(opts, xmlcore.WithEntityProcessing(*c.ProcessEntities))
	}

	if c.BoolTrue != "" || c.BoolFalse != "" {
		opts = append(opts, xmlcore.WithBoolStrings(xmlcore.BoolStrings{
			True:  c.BoolTrue,
			False: c.BoolFalse,
		}))
	}

	return opts
}
