// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invowk/textkit/internal/config"
	"github.com/invowk/textkit/internal/issue"
)

func TestRun_ConfigShow(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "", defaultsProvider())
	if code := env.run(t, "config", "show"); code != ExitOK {
		t.Fatalf("exit code = %d, want 0 (stderr %q)", code, env.stderr.String())
	}

	out := env.stdout.String()
	for _, want := range []string{"Current Configuration", "Config file: (using defaults)", "log_level: warn", "head:\n  lines: 10"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q in:\n%s", want, out)
		}
	}
}

func TestRun_ConfigDump(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "cue", want: "head: {\n\tlines: 10\n}"},
		{format: "toml", want: "lines = 10"},
		{format: "yaml", want: "head:\n  lines: 10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			env := newCLIEnv(t, "", defaultsProvider())
			if code := env.run(t, "config", "dump", "--format", tt.format); code != ExitOK {
				t.Fatalf("exit code = %d, want 0 (stderr %q)", code, env.stderr.String())
			}
			if !strings.Contains(env.stdout.String(), tt.want) {
				t.Errorf("dump missing %q in:\n%s", tt.want, env.stdout.String())
			}
		})
	}
}

func TestRun_ConfigDumpUnknownFormat(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "", defaultsProvider())
	if code := env.run(t, "config", "dump", "-f", "json"); code != ExitUsage {
		t.Fatalf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(env.stderr.String(), "unknown format") {
		t.Errorf("stderr = %q", env.stderr.String())
	}
}

func TestRun_ConfigPathSkipsLoading(t *testing.T) {
	t.Parallel()

	provider := &fakeConfig{err: errors.New("broken config")}
	env := newCLIEnv(t, "", provider)
	explicit := filepath.Join(env.dir, "mine.cue")

	if code := env.run(t, "--config", explicit, "config", "path"); code != ExitOK {
		t.Fatalf("exit code = %d, want 0 (stderr %q)", code, env.stderr.String())
	}
	if got := env.stdout.String(); got != explicit+"\n" {
		t.Errorf("stdout = %q, want %q", got, explicit+"\n")
	}
	if provider.calls != 0 {
		t.Errorf("config path loaded the configuration %d time(s)", provider.calls)
	}
}

func TestRun_ConfigLoadError(t *testing.T) {
	t.Parallel()

	provider := &fakeConfig{err: issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource("config.cue").
		WithSuggestion("Run 'textkit config show' to see the effective configuration").
		Wrap(errors.New("head.lines: invalid value 0")).
		BuildError()}
	env := newCLIEnv(t, "a\n", provider)

	if code := env.run(t, "cat"); code != ExitUsage {
		t.Fatalf("exit code = %d, want %d", code, ExitUsage)
	}
	if env.stdout.Len() != 0 {
		t.Errorf("no tool output expected, got %q", env.stdout.String())
	}
	stderr := env.stderr.String()
	if !strings.Contains(stderr, "Error: failed to load configuration: config.cue: head.lines: invalid value 0") {
		t.Errorf("stderr = %q", stderr)
	}
	if !strings.Contains(stderr, "• Run 'textkit config show'") {
		t.Errorf("stderr should list suggestions, got %q", stderr)
	}
}

func TestRun_ConfigFlagPassedToProvider(t *testing.T) {
	t.Parallel()

	provider := defaultsProvider()
	env := newCLIEnv(t, "", provider)

	if code := env.run(t, "--config", "custom.cue", "wc"); code != ExitOK {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if provider.opts.ConfigFilePath != "custom.cue" || provider.opts.BaseDir != env.dir {
		t.Errorf("LoadOptions = %+v, want ConfigFilePath custom.cue and BaseDir %s", provider.opts, env.dir)
	}
}

func TestRun_RealConfigFile(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "a\na\n", config.NewProvider())
	path := env.writeFile(t, "textkit.cue", "uniq: count_width: 1\n")

	if code := env.run(t, "--config", path, "uniq", "-c"); code != ExitOK {
		t.Fatalf("exit code = %d, want 0 (stderr %q)", code, env.stderr.String())
	}
	if got := env.stdout.String(); got != "2 a\n" {
		t.Errorf("stdout = %q, want %q", got, "2 a\n")
	}
}

func TestRun_RealConfigFileInvalid(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "", config.NewProvider())
	path := env.writeFile(t, "textkit.cue", "uniq: count_width: 0\n")

	if code := env.run(t, "--config", path, "uniq"); code != ExitUsage {
		t.Fatalf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(env.stderr.String(), path) {
		t.Errorf("stderr should name the config file, got %q", env.stderr.String())
	}
}

func TestRun_ConfigInitRejectsConfigFlag(t *testing.T) {
	t.Parallel()

	env := newCLIEnv(t, "", defaultsProvider())
	if code := env.run(t, "--config", "x.cue", "config", "init"); code != ExitUsage {
		t.Fatalf("exit code = %d, want %d", code, ExitUsage)
	}
	if _, err := os.Stat(filepath.Join(env.dir, "x.cue")); !os.IsNotExist(err) {
		t.Error("config init must not write the --config path")
	}
}
