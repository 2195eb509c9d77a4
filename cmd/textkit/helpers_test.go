// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invowk/textkit/internal/config"
)

type (
	// fakeConfig serves a fixed configuration without touching the filesystem.
	fakeConfig struct {
		loaded *config.Loaded
		err    error
		opts   config.LoadOptions
		calls  int
	}

	cliEnv struct {
		dir    string
		stdout *bytes.Buffer
		stderr *bytes.Buffer
		app    *App
	}
)

func (f *fakeConfig) Load(_ context.Context, opts config.LoadOptions) (*config.Loaded, error) {
	f.calls++
	f.opts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.loaded, nil
}

func defaultsProvider() *fakeConfig {
	return &fakeConfig{loaded: &config.Loaded{Config: config.DefaultConfig()}}
}

func newCLIEnv(t *testing.T, stdin string, provider ConfigProvider) *cliEnv {
	t.Helper()

	env := &cliEnv{
		dir:    t.TempDir(),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	env.app = NewApp(Dependencies{
		Config: provider,
		Stdin:  strings.NewReader(stdin),
		Stdout: env.stdout,
		Stderr: env.stderr,
		Dir:    env.dir,
	})
	return env
}

// run executes textkit with args as if typed after the binary name.
func (e *cliEnv) run(t *testing.T, args ...string) int {
	t.Helper()
	return run(t.Context(), e.app, append([]string{"textkit"}, args...))
}

func (e *cliEnv) writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(e.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
