// Package config loads and validates the probprep YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-probprep/internal/fileutil"
	"github.com/alnah/go-probprep/internal/snippets"
	"github.com/alnah/go-probprep/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidTimeout  = errors.New("invalid timeout")
	ErrEmptySelector   = errors.New("selector cannot be empty")
)

// AppName names the directory searched under the user config directory.
const AppName = "go-probprep"

// TimeoutEnv overrides browser.timeout when set.
const TimeoutEnv = "PROBPREP_TIMEOUT"

// DefaultTimeout bounds each element wait on the problem page.
const DefaultTimeout = 10 * time.Second

// MaxTimeout caps configured waits.
const MaxTimeout = 10 * time.Minute

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxSelectorLength = 512
	MaxScriptLength   = 4096
)

// Default selectors for the problem page.
const (
	DefaultTitleSelector       = "a.no-underline.truncate.cursor-text"
	DefaultDescriptionSelector = ".elfjS"
	DefaultCodeReadySelector   = ".view-lines"
	DefaultCodeScript          = "() => monaco.editor.getModels()[0].getValue()"
)

// Config holds all settings for a fetch run.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Browser   BrowserConfig   `yaml:"browser"`
	Selectors SelectorsConfig `yaml:"selectors"`
	Templates TemplatesConfig `yaml:"templates"`
	Markdown  MarkdownConfig  `yaml:"markdown"`
}

// OutputConfig defines where and what to write.
type OutputConfig struct {
	Dir  string `yaml:"dir"`  // Parent of the problem directory (empty = prompt)
	Tidy bool   `yaml:"tidy"` // Normalize README.md whitespace
	HTML bool   `yaml:"html"` // Also write README.html
	Open bool   `yaml:"open"` // Open the problem directory when done
}

// BrowserConfig defines how the browser is launched.
type BrowserConfig struct {
	Bin       string `yaml:"bin"`       // Chrome/Chromium binary (empty = auto-detect)
	Headless  bool   `yaml:"headless"`  // Run without a window
	NoSandbox bool   `yaml:"noSandbox"` // Disable the Chrome sandbox (Docker/CI)
	Timeout   string `yaml:"timeout"`   // Go duration, e.g. "10s"
}

// SelectorsConfig locates problem content on the page.
type SelectorsConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	CodeReady   string `yaml:"codeReady"`
	CodeScript  string `yaml:"codeScript"` // JavaScript function returning the starter code
}

// TemplatesConfig selects the header/footer snippets.
type TemplatesConfig struct {
	Dir      string `yaml:"dir"`      // Custom snippet directory (empty = built-in)
	Language string `yaml:"language"` // File extension of the source file
}

// MarkdownConfig tunes the description conversion.
type MarkdownConfig struct {
	Superscript bool `yaml:"superscript"` // Write <sup>/<sub> as ^x^ and _x_
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Tidy: true},
		Browser: BrowserConfig{
			Headless: true,
			Timeout:  DefaultTimeout.String(),
		},
		Selectors: SelectorsConfig{
			Title:       DefaultTitleSelector,
			Description: DefaultDescriptionSelector,
			CodeReady:   DefaultCodeReadySelector,
			CodeScript:  DefaultCodeScript,
		},
		Templates: TemplatesConfig{Language: snippets.DefaultLanguage},
		Markdown:  MarkdownConfig{Superscript: true},
	}
}

// TimeoutDuration parses browser.timeout. An empty value yields DefaultTimeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	return ParseTimeout(c.Browser.Timeout)
}

// ParseTimeout parses a wait timeout. An empty string yields DefaultTimeout.
func ParseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeout, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTimeout, d)
	}
	if d > MaxTimeout {
		return 0, fmt.Errorf("%w: %s exceeds maximum %s", ErrInvalidTimeout, d, MaxTimeout)
	}
	return d, nil
}

// ApplyEnv overrides settings from environment variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(TimeoutEnv); ok && v != "" {
		c.Browser.Timeout = v
	}
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for callers that build
// a Config in code.
func (c *Config) Validate() error {
	if _, err := c.TimeoutDuration(); err != nil {
		return fmt.Errorf("browser.timeout: %w", err)
	}
	if err := validateFieldLength("browser.bin", c.Browser.Bin, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("templates.dir", c.Templates.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := snippets.ValidateLanguage(c.Templates.Language); err != nil {
		return fmt.Errorf("templates.language: %w", err)
	}

	selectors := []struct {
		field, value string
		max          int
	}{
		{"selectors.title", c.Selectors.Title, MaxSelectorLength},
		{"selectors.description", c.Selectors.Description, MaxSelectorLength},
		{"selectors.codeReady", c.Selectors.CodeReady, MaxSelectorLength},
		{"selectors.codeScript", c.Selectors.CodeScript, MaxScriptLength},
	}
	for _, s := range selectors {
		if strings.TrimSpace(s.value) == "" {
			return fmt.Errorf("%w: %s", ErrEmptySelector, s.field)
		}
		if err := validateFieldLength(s.field, s.value, s.max); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched as a name in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// SearchPaths lists the candidate files for a config name, in search order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
