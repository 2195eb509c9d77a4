// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride replaces the XDG lookup in ConfigDir.
var configDirOverride string

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
}

// SetConfigDirOverride sets a custom config directory path. It is intended
// for tests, where xdg.ConfigHome is resolved once at process start.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
