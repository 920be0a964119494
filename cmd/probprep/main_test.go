package main

// Notes:
// - runMain is tested through exit codes and output with a fake Preparer, so
//   no browser is started.
// - fetch end-to-end behavior (files written, Close called) lives in fetch_test.go.

import (
	"bytes"
	"context"
	"strings"
	"testing"

	probprep "github.com/alnah/go-probprep"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake preparer and environment
// ---------------------------------------------------------------------------

type fakePreparer struct {
	gotURL     string
	result     *probprep.Result
	err        error
	closeCalls int
}

func (f *fakePreparer) Prepare(ctx context.Context, url string) (*probprep.Result, error) {
	f.gotURL = url
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &probprep.Result{
		Problem:  probprep.Problem{URL: url, Title: "Two Sum"},
		Language: "cpp",
		Readme:   []byte("# Two Sum\n"),
		Source:   []byte("class Solution {};\n"),
	}, nil
}

func (f *fakePreparer) Close() error {
	f.closeCalls++
	return nil
}

type testEnv struct {
	*Environment
	stdout, stderr *bytes.Buffer
	preparer       *fakePreparer
	newErr         error
	opts           []probprep.Option
	opened         []string
}

// newTestEnv returns an Environment with buffered output, the given stdin,
// no environment variables and a fake preparer.
func newTestEnv(stdin string) *testEnv {
	te := &testEnv{
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		preparer: &fakePreparer{},
	}
	te.Environment = &Environment{
		Stdin:     strings.NewReader(stdin),
		Stdout:    te.stdout,
		Stderr:    te.stderr,
		LookupEnv: func(string) (string, bool) { return "", false },
		NewPreparer: func(opts ...probprep.Option) (Preparer, error) {
			te.opts = opts
			if te.newErr != nil {
				return nil, te.newErr
			}
			return te.preparer, nil
		},
		OpenDir: func(dir string) error {
			te.opened = append(te.opened, dir)
			return nil
		},
		TermWidth: func() int { return 80 },
	}
	return te
}

// ---------------------------------------------------------------------------
// TestIsCommand - Command name detection
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"fetch", true},
		{"doctor", true},
		{"config", true},
		{"version", true},
		{"help", true},
		{"convert", false},
		{"", false},
		{"https://leetcode.com/problems/two-sum/", false},
		{"Fetch", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := isCommand(tt.input); got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch, output and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage",
			args:         []string{"probprep"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: probprep"},
		},
		{
			name:         "version command",
			args:         []string{"probprep", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"probprep dev"},
		},
		{
			name:         "help command",
			args:         []string{"probprep", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: probprep", "Commands:"},
		},
		{
			name:         "help fetch",
			args:         []string{"probprep", "help", "fetch"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: probprep fetch", "--no-sandbox"},
		},
		{
			name:         "help for unknown command",
			args:         []string{"probprep", "help", "bogus"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: bogus"},
		},
		{
			name:         "unknown command",
			args:         []string{"probprep", "unknown"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: unknown"},
		},
		{
			name:         "fetch -h",
			args:         []string{"probprep", "fetch", "-h"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: probprep fetch"},
		},
		{
			name:         "fetch unknown flag",
			args:         []string{"probprep", "fetch", "--bogus"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"bogus", "probprep help fetch"},
		},
		{
			name:         "fetch with two URLs",
			args:         []string{"probprep", "fetch", "https://a.example/x", "https://b.example/y"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"at most one URL"},
		},
		{
			name:         "fetch invalid timeout",
			args:         []string{"probprep", "fetch", "-t", "soon", "https://leetcode.com/problems/two-sum/"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid timeout"},
		},
		{
			name:         "fetch invalid language",
			args:         []string{"probprep", "fetch", "-l", "c/pp", "https://leetcode.com/problems/two-sum/"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"templates.language"},
		},
		{
			name:         "fetch missing config",
			args:         []string{"probprep", "fetch", "-c", "no-such-probprep-config", "https://leetcode.com/problems/two-sum/"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"config file not found", "hint:"},
		},
		{
			name:         "fetch without URL and empty stdin",
			args:         []string{"probprep", "fetch", "-o", "out"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"no problem URL", "hint:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv("")
			code := runMain(tt.args, te.Environment)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, te.stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(te.stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, te.stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(te.stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, te.stderr.String())
				}
			}
		})
	}
}

func TestRunMain_BareURLIsFetch(t *testing.T) {
	t.Parallel()

	te := newTestEnv("")
	out := t.TempDir()
	url := "https://leetcode.com/problems/two-sum/"

	code := runMain([]string{"probprep", url, "-o", out, "-q"}, te.Environment)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d\nstderr: %s", code, ExitSuccess, te.stderr.String())
	}
	if te.preparer.gotURL != url {
		t.Errorf("Prepare URL = %q, want %q", te.preparer.gotURL, url)
	}
}

func TestRunMain_BrowserErrorExitCode(t *testing.T) {
	t.Parallel()

	te := newTestEnv("")
	te.preparer.err = probprep.ErrElementTimeout

	code := runMain([]string{"probprep", "fetch", "-o", t.TempDir(), "https://leetcode.com/problems/two-sum/"}, te.Environment)
	if code != ExitBrowser {
		t.Errorf("runMain() = %d, want %d", code, ExitBrowser)
	}
	if !strings.Contains(te.stderr.String(), "--timeout") {
		t.Errorf("stderr should hint at --timeout, got %q", te.stderr.String())
	}
	if te.preparer.closeCalls != 1 {
		t.Errorf("Close calls = %d, want 1", te.preparer.closeCalls)
	}
}
