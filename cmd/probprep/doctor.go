package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"
	flag "github.com/spf13/pflag"

	probprep "github.com/alnah/go-probprep"
	"github.com/alnah/go-probprep/internal/config"
	"github.com/alnah/go-probprep/internal/fileutil"
)

// Doctor status values.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string      `json:"status"` // "ready", "warnings", "errors"
	Chrome   chromeInfo  `json:"chrome"`
	Env      envInfo     `json:"environment"`
	System   systemInfo  `json:"system"`
	Snippets snippetInfo `json:"snippets"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// systemInfo holds filesystem check results.
type systemInfo struct {
	TempWritable   bool   `json:"temp_writable"`
	OutputDir      string `json:"output_dir,omitempty"`
	OutputWritable bool   `json:"output_writable"`
}

// snippetInfo holds snippet check results.
type snippetInfo struct {
	Language string   `json:"language"`
	Dir      string   `json:"dir,omitempty"`
	Custom   bool     `json:"custom"`
	Loaded   bool     `json:"loaded"`
	Builtin  []string `json:"builtin"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	var jsonOutput bool
	var name string
	fs.BoolVar(&jsonOutput, "json", false, "print results as JSON")
	fs.StringVarP(&name, "config", "c", "", "config file name or path")
	fs.Usage = func() { printDoctorUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ExitSuccess
		}
		return ExitUsage
	}

	cfg, err := loadFetchConfig(name, env.LookupEnv)
	if err != nil {
		printError(env, err)
		return exitCodeFor(err)
	}

	result := runDoctor(cfg, env.LookupEnv)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(cfg *config.Config, lookup func(string) (string, bool)) *doctorResult {
	getenv := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  getenv("ROD_NO_SANDBOX"),
			BrowserBin: getenv("ROD_BROWSER_BIN"),
		},
	}

	checkChrome(result, cfg)
	checkEnvironment(result, cfg, getenv)
	checkSystem(result, cfg)
	checkSnippets(result, cfg)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

// checkChrome detects Chrome/Chromium installation.
// The configured binary wins over ROD_BROWSER_BIN, which wins over detection.
func checkChrome(result *doctorResult, cfg *config.Config) {
	chromePath := cfg.Browser.Bin
	if chromePath == "" {
		chromePath = result.Env.BrowserBin
	}

	if chromePath == "" {
		// Use rod's launcher to locate Chrome
		var found bool
		chromePath, found = launcher.LookPath()
		if !found {
			result.Errors = append(result.Errors,
				"Chrome/Chromium not found. Install Chrome, set browser.bin or ROD_BROWSER_BIN")
			return
		}
	}

	// Verify it exists
	if _, err := os.Stat(chromePath); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Chrome not found at %s", chromePath))
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = chromePath

	// Get version by running chrome --version
	cmd := exec.Command(chromePath, "--version") // #nosec G204 -- path comes from local config or detection
	out, err := cmd.Output()
	if err == nil {
		result.Chrome.Version = strings.TrimSpace(string(out))
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get Chrome version: %v", err))
	}

	result.Chrome.Sandbox = !cfg.Browser.NoSandbox && result.Env.NoSandbox != "1"
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult, cfg *config.Config, getenv func(string) string) {
	result.Env.Container, result.Env.ContainerHint = isContainer(getenv)

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	sandboxOff := cfg.Browser.NoSandbox || result.Env.NoSandbox == "1"
	if (result.Env.Container || result.Env.CI) && !sandboxOff {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but the sandbox is on. Use --no-sandbox or set ROD_NO_SANDBOX=1")
	}
	if !cfg.Browser.Headless && (result.Env.Container || result.Env.CI) {
		result.Warnings = append(result.Warnings,
			"browser.headless is false but no display is likely available")
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer(getenv func(string) string) (bool, string) {
	// Explicit override (highest priority)
	if getenv("PROBPREP_CONTAINER") == "1" {
		return true, "PROBPREP_CONTAINER=1"
	}
	// Docker
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn / general container indicator
	if v := getenv("container"); v != "" {
		return true, "container=" + v
	}
	// Kubernetes
	if getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory (used by the browser profile) and
// the configured output directory are writable.
func checkSystem(result *doctorResult, cfg *config.Config) {
	if err := fileutil.DirWritable(os.TempDir()); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", os.TempDir()))
	} else {
		result.System.TempWritable = true
	}

	dir := cfg.Output.Dir
	if dir == "" {
		return
	}
	result.System.OutputDir = dir

	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Output directory %s does not exist yet; it will be created", dir))
	case err != nil:
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory: %v", err))
	case !info.IsDir():
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory %s is not a directory", dir))
	default:
		if err := fileutil.DirWritable(dir); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Output directory not writable: %s", dir))
		} else {
			result.System.OutputWritable = true
		}
	}
}

// checkSnippets verifies the configured language has a header and footer.
func checkSnippets(result *doctorResult, cfg *config.Config) {
	result.Snippets = snippetInfo{
		Language: cfg.Templates.Language,
		Dir:      cfg.Templates.Dir,
		Builtin:  probprep.BuiltinLanguages(),
	}

	loader, err := probprep.NewSnippetLoader(cfg.Templates.Dir)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Snippet directory: %v", err))
		return
	}
	if dir := probprep.SnippetDir(loader); dir != "" {
		result.Snippets.Dir = dir
		result.Snippets.Custom = true
	}
	if _, err := loader.LoadSnippets(cfg.Templates.Language); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Snippets for %q: %v", cfg.Templates.Language, err))
		return
	}
	result.Snippets.Loaded = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "probprep doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium")
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintln(w, "  [OK] Sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] Sandbox: disabled")
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	if r.System.OutputWritable {
		fmt.Fprintf(w, "  [OK] Output directory: %s\n", r.System.OutputDir)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Snippets")
	if r.Snippets.Loaded {
		fmt.Fprintf(w, "  [OK] Language: %s\n", r.Snippets.Language)
	} else {
		fmt.Fprintf(w, "  [ERROR] Language: %s\n", r.Snippets.Language)
	}
	if r.Snippets.Dir != "" {
		fmt.Fprintf(w, "  [OK] Directory: %s\n", r.Snippets.Dir)
	}
	fmt.Fprintf(w, "  [OK] Built-in: %s\n", strings.Join(r.Snippets.Builtin, ", "))
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to fetch")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
