// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv bundles a HandlerContext with its captured streams.
type testEnv struct {
	hc     *HandlerContext
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	dir    string
}

func newTestEnv(t *testing.T, stdin string) *testEnv {
	t.Helper()

	env := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		dir:    t.TempDir(),
	}
	env.hc = &HandlerContext{
		Stdin:  strings.NewReader(stdin),
		Stdout: env.stdout,
		Stderr: env.stderr,
		Dir:    env.dir,
	}
	return env
}

// writeFile creates name under the env directory with content.
func (e *testEnv) writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(e.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}
