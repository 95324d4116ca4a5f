// Package config loads the YAML configuration of the command line tool.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"

	pr "github.com/benoitkugler/boxgeom/css/properties"
)

//go:embed config.yaml
var DefaultConfig []byte

type (
	PageConfig struct {
		Size   string  `yaml:"size" validate:"oneof=a5 a4 a3 b5 b4 letter legal ledger"`
		Width  float64 `yaml:"width" validate:"gte=0"`
		Height float64 `yaml:"height" validate:"gte=0"`
	}

	LayoutConfig struct {
		Parallel bool `yaml:"parallel"`
		Workers  int  `yaml:"workers" validate:"gte=0"`
	}

	LoggingConfig struct {
		Level string `yaml:"level" validate:"oneof=none normal debug"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Page    PageConfig    `yaml:"page"`
		Layout  LayoutConfig  `yaml:"layout"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if err := gencfg.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of the embedded defaults and performs validation.
// An empty path returns the defaults.
func LoadConfiguration(path string) (*Config, error) {
	cfg, err := unmarshalConfig(DefaultConfig, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	if path == "" {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

// PageSize returns the outer size of the page in pixels,
// nil meaning the default (A4).
func (cfg *Config) PageSize() (width, height pr.MaybeFloat) {
	if cfg.Page.Size != "a4" {
		if size, ok := pr.PageSizes[cfg.Page.Size]; ok {
			size = size.ToPixels()
			width, height = size[0].Value, size[1].Value
		}
	}
	if cfg.Page.Width > 0 {
		width = pr.Float(cfg.Page.Width)
	}
	if cfg.Page.Height > 0 {
		height = pr.Float(cfg.Page.Height)
	}
	return width, height
}
