package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path and returns a validated
// [Config] with defaults applied.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r, applies defaults, and
// validates the result. Useful in tests where configs are constructed from
// string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	cfg.applyDefaults()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if strings.TrimSpace(cfg.Leader) == "" {
		errs = append(errs, fmt.Errorf("leader must not be empty"))
	} else if len(strings.Fields(cfg.Leader)) != 1 {
		errs = append(errs, fmt.Errorf("leader %q must be a single word", cfg.Leader))
	}

	if cfg.KeyRepeatMS < 0 {
		errs = append(errs, fmt.Errorf("key_repeat_ms %d must not be negative", cfg.KeyRepeatMS))
	}
	if cfg.ShellTimeoutSecs < 0 {
		errs = append(errs, fmt.Errorf("shell_timeout_secs %d must not be negative", cfg.ShellTimeoutSecs))
	}
	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}

	for i, cmd := range cfg.Commands {
		if strings.TrimSpace(cmd.Phrase) == "" {
			errs = append(errs, fmt.Errorf("commands[%d]: phrase must not be empty", i))
		}
		if strings.TrimSpace(cmd.Shell) == "" {
			errs = append(errs, fmt.Errorf("commands[%q]: shell command must not be empty", cmd.Phrase))
		}
	}

	for name, wrapper := range cfg.Wrappers {
		if wrapper == "" {
			errs = append(errs, fmt.Errorf("wrappers[%q]: value must not be empty", name))
		}
	}

	return errors.Join(errs...)
}
