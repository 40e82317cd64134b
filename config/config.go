// Package config loads the settings of the nodeset command.
package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/heathj/nodeset/nodeset"
)

// Config is the on-disk configuration, in YAML:
//
//	log_level: debug
//	log_format: json
//	color: false
//	plugins:
//	  ajax:
//	    param: umbrella=true
//	    timeout: 5s
type Config struct {
	LogLevel  string          `yaml:"log_level"`
	LogFormat string          `yaml:"log_format"`
	Color     *bool           `yaml:"color"`
	Plugins   nodeset.Options `yaml:"plugins"`
}

func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Plugins:   nodeset.Options{},
	}
}

// Load reads path on top of the defaults. An empty path gives the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	if cfg.Plugins == nil {
		cfg.Plugins = nodeset.Options{}
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, errors.Wrap(err, "log_level")
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, errors.Errorf("log_format: unknown format %q", cfg.LogFormat)
	}
	return cfg, nil
}

// Apply configures logger from the log settings.
func (c *Config) Apply(logger *logrus.Logger) error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log_level")
	}
	logger.SetLevel(level)
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{})
	}
	return nil
}
