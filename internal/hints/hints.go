// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-probprep/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser launch and connection errors.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "use --no-sandbox or set ROD_NO_SANDBOX=1 in Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "use --browser-bin or set ROD_BROWSER_BIN to pick a Chrome binary")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about raising the wait timeout.
func ForTimeout() string {
	return format("on a slow connection, raise --timeout (e.g. --timeout 30s)")
}

// ForElementTimeout returns hints for a selector that never appeared.
// The page layout may have changed, or a sign-in wall may hide the content.
// The error itself names the selector.
func ForElementTimeout() string {
	return formatHints([]string{
		"the page layout may have changed; override the selector under selectors: in the config file",
		"run with --show-browser to see what the page shows",
	})
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config directory among searchedPaths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath2slash(p), "/go-probprep/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable; titles with / or : cannot be used as folder names on every system")
}

// ForLanguage lists the languages with built-in snippets.
func ForLanguage(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("built-in languages: " + strings.Join(available, ", ") + "; or point --templates at a directory with header.<lang> and footer.<lang>")
}

// ForInvalidURL returns a hint for a malformed problem URL.
func ForInvalidURL() string {
	return format("pass the full problem address, e.g. https://leetcode.com/problems/two-sum/")
}

func filepath2slash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
