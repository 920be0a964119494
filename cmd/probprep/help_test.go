package main

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestHelpText - Every documented fetch flag appears in the help
// ---------------------------------------------------------------------------

func TestPrintFetchUsage_ListsFlags(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printFetchUsage(&buf)
	help := buf.String()

	flags := []string{
		"--output", "--config", "--timeout", "--lang", "--templates",
		"--browser-bin", "--show-browser", "--no-sandbox", "--html",
		"--no-tidy", "--no-sup-sub", "--preview", "--open", "--quiet", "--verbose",
	}
	for _, f := range flags {
		if !strings.Contains(help, f) {
			t.Errorf("fetch help should mention %s", f)
		}
	}
}

func TestRunHelp_Commands(t *testing.T) {
	t.Parallel()

	for _, cmd := range commands {
		t.Run(cmd, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv("")
			if code := runHelp([]string{cmd}, te.Environment); code != ExitSuccess {
				t.Fatalf("runHelp(%q) = %d", cmd, code)
			}
			if !strings.Contains(te.stdout.String(), "Usage: probprep "+cmd) {
				t.Errorf("help for %q = %q", cmd, te.stdout.String())
			}
		})
	}
}
