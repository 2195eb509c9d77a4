// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"
)

func TestRun_ManualTopics(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "", defaultsProvider())
	if code := env.run(t, "manual"); code != ExitOK {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, topic := range append(toolNames, "config") {
		if !strings.Contains(env.stdout.String(), "  "+topic+"\n") {
			t.Errorf("topic list missing %q:\n%s", topic, env.stdout.String())
		}
	}
}

func TestRun_ManualRaw(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "", defaultsProvider())
	if code := env.run(t, "man", "--raw", "head"); code != ExitOK {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.HasPrefix(env.stdout.String(), "# head\n") {
		t.Errorf("raw page should be the markdown source, got %q", env.stdout.String())
	}
}

func TestRun_ManualRendered(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "", defaultsProvider())
	if code := env.run(t, "manual", "wc"); code != ExitOK {
		t.Fatalf("exit code = %d, want 0 (stderr %q)", code, env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "field_width") {
		t.Errorf("rendered page missing content:\n%s", env.stdout.String())
	}
}

func TestRun_ManualUnknownTopic(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "", defaultsProvider())
	if code := env.run(t, "manual", "sort"); code != ExitUsage {
		t.Fatalf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(env.stderr.String(), `no manual entry for "sort"`) {
		t.Errorf("stderr = %q", env.stderr.String())
	}
}
