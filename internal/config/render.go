// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"
)

const (
	// FormatCUE renders the configuration in the config file syntax.
	FormatCUE Format = "cue"
	// FormatTOML renders the configuration as TOML.
	FormatTOML Format = "toml"
	// FormatYAML renders the configuration as YAML.
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by Render for an unsupported Format.
var ErrUnknownFormat = errors.New("unknown format")

// Format names an output syntax for Render.
type Format string

// Formats lists every supported Format.
func Formats() []Format {
	return []Format{FormatCUE, FormatTOML, FormatYAML}
}

// Render serializes cfg in the requested format.
func Render(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatCUE:
		return []byte(GenerateCUE(cfg)), nil
	case FormatTOML:
		data, err := toml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to render TOML: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to render YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w %q (valid: cue, toml, yaml)", ErrUnknownFormat, format)
	}
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// textkit configuration file\n")
	sb.WriteString("// Environment variables (TEXTKIT_HEAD_LINES, ...) override these values.\n\n")

	fmt.Fprintf(&sb, "log_level: %q\n", cfg.LogLevel)
	fmt.Fprintf(&sb, "color:     %q\n", cfg.Color)

	sb.WriteString("\ncat: {\n")
	fmt.Fprintf(&sb, "\tnumber_width: %d\n", cfg.Cat.NumberWidth)
	sb.WriteString("}\n")

	sb.WriteString("\nhead: {\n")
	fmt.Fprintf(&sb, "\tlines: %d\n", cfg.Head.Lines)
	sb.WriteString("}\n")

	sb.WriteString("\nuniq: {\n")
	fmt.Fprintf(&sb, "\tcount_width: %d\n", cfg.Uniq.CountWidth)
	sb.WriteString("}\n")

	sb.WriteString("\nwc: {\n")
	fmt.Fprintf(&sb, "\tfield_width: %d\n", cfg.Wc.FieldWidth)
	sb.WriteString("}\n")

	return sb.String()
}
