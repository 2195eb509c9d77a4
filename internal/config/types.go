// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// LogLevelDebug logs every tool event.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs informational events.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs warnings and errors only.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs errors only.
	LogLevelError LogLevel = "error"

	// ColorAuto styles output only when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles output unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables styling.
	ColorNever ColorMode = "never"

	// maxWidth bounds every configurable column width.
	maxWidth = 20
)

var (
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidColorMode is returned when a ColorMode value is not recognized.
	ErrInvalidColorMode = errors.New("invalid color mode")
	// ErrInvalidWidth is returned when a width or count setting is out of range.
	ErrInvalidWidth = errors.New("invalid width")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// LogLevel is the minimum level written by the diagnostic logger.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// ColorMode controls terminal styling of textkit's own output.
	ColorMode string

	// InvalidColorModeError is returned when a ColorMode value is not recognized.
	// It wraps ErrInvalidColorMode for errors.Is() compatibility.
	InvalidColorModeError struct {
		Value ColorMode
	}

	// InvalidWidthError is returned when a numeric setting is outside its
	// allowed range.
	InvalidWidthError struct {
		Key   string
		Value int
		Max   int
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// every field-level validation error.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// LogLevel is the minimum level of the diagnostic logger.
		LogLevel LogLevel `json:"log_level" mapstructure:"log_level" toml:"log_level" yaml:"log_level"`
		// Color controls styling of help, config and error output.
		Color ColorMode `json:"color" mapstructure:"color" toml:"color" yaml:"color"`
		// Cat configures the cat tool.
		Cat CatConfig `json:"cat" mapstructure:"cat" toml:"cat" yaml:"cat"`
		// Head configures the head tool.
		Head HeadConfig `json:"head" mapstructure:"head" toml:"head" yaml:"head"`
		// Uniq configures the uniq tool.
		Uniq UniqConfig `json:"uniq" mapstructure:"uniq" toml:"uniq" yaml:"uniq"`
		// Wc configures the wc tool.
		Wc WcConfig `json:"wc" mapstructure:"wc" toml:"wc" yaml:"wc"`
	}

	// CatConfig configures cat.
	CatConfig struct {
		// NumberWidth is the width of the line number column for -n and -b.
		NumberWidth int `json:"number_width" mapstructure:"number_width" toml:"number_width" yaml:"number_width"`
	}

	// HeadConfig configures head.
	HeadConfig struct {
		// Lines is the line count used when -n is not given.
		Lines int `json:"lines" mapstructure:"lines" toml:"lines" yaml:"lines"`
	}

	// UniqConfig configures uniq.
	UniqConfig struct {
		// CountWidth is the width of the -c count column.
		CountWidth int `json:"count_width" mapstructure:"count_width" toml:"count_width" yaml:"count_width"`
	}

	// WcConfig configures wc.
	WcConfig struct {
		// FieldWidth is the width of every count column.
		FieldWidth int `json:"field_width" mapstructure:"field_width" toml:"field_width" yaml:"field_width"`
	}
)

// Error implements the error interface.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error {
	return ErrInvalidLogLevel
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// Validate returns an error if the LogLevel is not one of the defined levels.
func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return &InvalidLogLevelError{Value: l}
	}
}

// Error implements the error interface.
func (e *InvalidColorModeError) Error() string {
	return fmt.Sprintf("invalid color mode %q (valid: auto, always, never)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorModeError) Unwrap() error {
	return ErrInvalidColorMode
}

// String returns the string representation of the ColorMode.
func (c ColorMode) String() string { return string(c) }

// Validate returns an error if the ColorMode is not one of the defined modes.
func (c ColorMode) Validate() error {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return &InvalidColorModeError{Value: c}
	}
}

// Error implements the error interface.
func (e *InvalidWidthError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("%s: %d is out of range (1..%d)", e.Key, e.Value, e.Max)
	}
	return fmt.Sprintf("%s: %d must be at least 1", e.Key, e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidWidthError) Unwrap() error {
	return ErrInvalidWidth
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns the sentinel and every field error so errors.Is matches both.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Validate checks every field and returns an *InvalidConfigError listing all
// problems, or nil.
func (c *Config) Validate() error {
	var errs []error
	if err := c.LogLevel.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Color.Validate(); err != nil {
		errs = append(errs, err)
	}
	errs = appendWidthError(errs, "cat.number_width", c.Cat.NumberWidth, maxWidth)
	errs = appendWidthError(errs, "head.lines", c.Head.Lines, 0)
	errs = appendWidthError(errs, "uniq.count_width", c.Uniq.CountWidth, maxWidth)
	errs = appendWidthError(errs, "wc.field_width", c.Wc.FieldWidth, maxWidth)

	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// appendWidthError appends an InvalidWidthError when value is below 1 or,
// for max > 0, above max.
func appendWidthError(errs []error, key string, value, maxValue int) []error {
	if value < 1 || (maxValue > 0 && value > maxValue) {
		return append(errs, &InvalidWidthError{Key: key, Value: value, Max: maxValue})
	}
	return errs
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: LogLevelWarn,
		Color:    ColorAuto,
		Cat:      CatConfig{NumberWidth: 6},
		Head:     HeadConfig{Lines: 10},
		Uniq:     UniqConfig{CountWidth: 4},
		Wc:       WcConfig{FieldWidth: 8},
	}
}
