// Package config holds the validated command-line configuration.
package config

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
)

// Operation names accepted on the command line.
const (
	Encrypt = "encrypt"
	Decrypt = "decrypt"
)

// Config holds the configuration for a single encrypt or decrypt run.
type Config struct {
	// Flags
	Verbose      bool   `mapstructure:"verbose"`
	MaxSize      string `mapstructure:"max-size"`
	ImagesOnly   bool   `mapstructure:"images-only"`
	MinKeyLength int    `mapstructure:"min-key-length" validate:"gte=0"`

	// Positional arguments
	Operation string `validate:"oneof=encrypt decrypt"`
	Input     string `validate:"required"`
	Key       string `validate:"required,minchars=MinKeyLength"`
	Output    string `validate:"required_if=Operation decrypt"`
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	validate := validator.New()

	if err := registerMinChars(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	if _, err := c.MaxBytes(); err != nil {
		return err
	}

	return nil
}

// MaxBytes parses MaxSize, such as "10MiB" or "500kB". Empty means no limit.
func (c Config) MaxBytes() (int64, error) {
	if c.MaxSize == "" {
		return 0, nil
	}

	size, err := humanize.ParseBytes(c.MaxSize)
	if err != nil {
		return 0, fmt.Errorf("invalid max-size %q: %w", c.MaxSize, err)
	}

	if size > math.MaxInt64 {
		return 0, fmt.Errorf("invalid max-size %q: too large", c.MaxSize)
	}

	return int64(size), nil
}
