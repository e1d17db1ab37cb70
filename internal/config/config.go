// Package config holds the e2elint configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const envPrefix = "E2ELINT_"

type Config struct {
	Lint struct {
		Exclude       []string `yaml:"exclude"`        // files the rules skip
		DisabledRules []string `yaml:"disabled_rules"` // rule IDs
	} `yaml:"lint"`

	Output struct {
		Format string `yaml:"format"` // "text"|"json"
	} `yaml:"output"`

	Logging struct {
		Format string `yaml:"format"` // "json"|"text"
		Level  string `yaml:"level"`  // "info"|"debug"|"warn"|"error"
	} `yaml:"logging"`
}

func Default() Config {
	var c Config
	c.Lint.Exclude = []string{"core/tests/protractor_utils/action.js"}
	c.Output.Format = "text"
	c.Logging.Format = "text"
	c.Logging.Level = "warn"
	return c
}

// Load reads the configuration file at path over the defaults and applies
// the environment overrides.  A missing file is not an error when path is
// empty or the default name.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && path == DefaultFile:
		case err != nil:
			return c, err
		default:
			if err := yaml.Unmarshal(b, &c); err != nil {
				return c, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}
	c.applyEnv(os.Getenv)
	c.Normalize()
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = ".e2elint.yaml"

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(envPrefix + "EXCLUDE"); v != "" {
		c.Lint.Exclude = SplitList(v)
	}
	if v := getenv(envPrefix + "DISABLED_RULES"); v != "" {
		c.Lint.DisabledRules = SplitList(v)
	}
	if v := getenv(envPrefix + "OUTPUT_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := getenv(envPrefix + "LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := getenv(envPrefix + "LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Normalize lowercases the enumerated values.  It must be called again
// after any of them is overridden.
func (c *Config) Normalize() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
}

// Validate checks the enumerated values.  They are expected to be
// normalized.
func (c Config) Validate() error {
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q, want text or json", c.Output.Format)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q, want text or json", c.Logging.Format)
	}
	return nil
}

// SplitList splits a comma separated list, dropping empty items.
func SplitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
