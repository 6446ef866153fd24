// Package config loads the graphsearch CLI settings from an optional YAML
// file. Command-line flags are applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the effective CLI configuration.
type Config struct {
	// Output selects the result renderer: text, json or yaml.
	Output string `yaml:"output" validate:"oneof=text json yaml"`

	// LogLevel and LogFormat configure the slog handler on stderr.
	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`

	// Lang picks the message language for tables and errors.
	Lang string `yaml:"lang" validate:"oneof=en vi"`

	// Timeout bounds each search; 0 disables the deadline.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`

	// MaxSteps caps the trace length of each search; 0 means unlimited.
	MaxSteps int `yaml:"max_steps" validate:"gte=0"`

	// Jobs is how many input files are searched concurrently.
	Jobs int `yaml:"jobs" validate:"gte=1,lte=64"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:    "text",
		LogLevel:  "warn",
		LogFormat: "text",
		Lang:      "en",
		Timeout:   0,
		MaxSteps:  0,
		Jobs:      4,
	}
}

// Load reads the YAML file at path over Default. An empty path returns the
// defaults unchanged. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// decode unmarshals data into cfg in strict mode. Empty documents are fine.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks every field against its allowed range.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s=%v fails %q", ErrInvalid, fe.Field(), fe.Value(), fe.ActualTag())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}
