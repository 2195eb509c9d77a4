// SPDX-License-Identifier: MPL-2.0

// Package config handles textkit configuration using Viper with CUE as the file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/textkit/config.cue (resolved by
// adrg/xdg, so macOS and Windows get their native locations), falling back to
// ./config.cue. Every key can be overridden through TEXTKIT_* environment
// variables, with dots replaced by underscores (TEXTKIT_WC_FIELD_WIDTH).
//
// Files are validated against an embedded CUE schema (config_schema.cue) before
// they reach Viper. The effective configuration can be rendered back as CUE,
// TOML or YAML.
package config
