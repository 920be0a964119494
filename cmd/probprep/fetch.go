package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	probprep "github.com/alnah/go-probprep"
	"github.com/alnah/go-probprep/internal/config"
	"github.com/alnah/go-probprep/internal/fileutil"
	"github.com/alnah/go-probprep/internal/hints"
	"github.com/alnah/go-probprep/internal/pipeline"
)

// ErrNoURL indicates no problem URL was given or entered.
var ErrNoURL = errors.New("no problem URL given")

// defaultOutputDir is used when the output directory prompt is left empty.
const defaultOutputDir = "."

// runFetch resolves settings, prepares the problem and writes its directory.
func runFetch(ctx context.Context, positional []string, flags *fetchFlags, env *Environment) error {
	start := time.Now()

	cfg, err := loadFetchConfig(flags.common.config, env.LookupEnv)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	prompt := newPrompter(env.Stdin, env.Stderr)

	url, err := resolveURL(positional, prompt)
	if err != nil {
		return err
	}

	outDir, err := resolveOutputDir(cfg, prompt)
	if err != nil {
		return err
	}

	opts, err := preparerOptions(cfg)
	if err != nil {
		return err
	}

	preparer, err := env.NewPreparer(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := preparer.Close(); cerr != nil && flags.common.verbose {
			fmt.Fprintf(env.Stderr, "warning: closing browser: %v\n", cerr)
		}
	}()

	if !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "Fetching %s\n", url)
	}

	res, err := preparer.Prepare(ctx, url)
	if err != nil {
		return err
	}

	saved, err := res.Save(outDir)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		printSaved(env.Stdout, res, saved, flags.common.verbose, time.Since(start))
	}

	if flags.preview {
		previewReadme(env, res.Readme)
	}

	if cfg.Output.Open {
		if err := env.OpenDir(saved.Dir); err != nil {
			fmt.Fprintf(env.Stderr, "warning: could not open %s: %v\n", saved.Dir, err)
		}
	}

	return nil
}

// loadFetchConfig loads the named config, or the defaults when name is empty,
// then applies environment overrides.
func loadFetchConfig(name string, lookup func(string) (string, bool)) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}
	if lookup != nil {
		cfg.ApplyEnv(lookup)
	}
	return cfg, nil
}

// mergeFlags overlays explicitly set CLI flags onto cfg.
func mergeFlags(flags *fetchFlags, cfg *config.Config) {
	if flags.output.dir != "" {
		cfg.Output.Dir = flags.output.dir
	}
	if flags.output.lang != "" {
		cfg.Templates.Language = flags.output.lang
	}
	if flags.output.templates != "" {
		cfg.Templates.Dir = flags.output.templates
	}
	if flags.output.html {
		cfg.Output.HTML = true
	}
	if flags.output.noTidy {
		cfg.Output.Tidy = false
	}
	if flags.output.noSupSub {
		cfg.Markdown.Superscript = false
	}
	if flags.browser.timeout != "" {
		cfg.Browser.Timeout = flags.browser.timeout
	}
	if flags.browser.bin != "" {
		cfg.Browser.Bin = flags.browser.bin
	}
	if flags.browser.showBrowser {
		cfg.Browser.Headless = false
	}
	if flags.browser.noSandbox {
		cfg.Browser.NoSandbox = true
	}
	if flags.open {
		cfg.Output.Open = true
	}
}

// resolveURL takes the URL argument, or asks for one.
func resolveURL(positional []string, p *prompter) (string, error) {
	if len(positional) > 0 && strings.TrimSpace(positional[0]) != "" {
		return strings.TrimSpace(positional[0]), nil
	}

	url, err := p.ask("Problem URL: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrNoURL
		}
		return "", err
	}
	if url == "" {
		return "", ErrNoURL
	}
	return url, nil
}

// resolveOutputDir takes output.dir, or asks for one. An empty answer means
// the current directory.
func resolveOutputDir(cfg *config.Config, p *prompter) (string, error) {
	if cfg.Output.Dir != "" {
		return cfg.Output.Dir, nil
	}

	dir, err := p.ask("Output directory [.]: ")
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if dir == "" {
		return defaultOutputDir, nil
	}
	return dir, nil
}

// preparerOptions translates a validated config into Preparer options.
func preparerOptions(cfg *config.Config) ([]probprep.Option, error) {
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	return []probprep.Option{
		probprep.WithTimeout(timeout),
		probprep.WithSelectors(probprep.Selectors{
			Title:       cfg.Selectors.Title,
			Description: cfg.Selectors.Description,
			CodeReady:   cfg.Selectors.CodeReady,
			CodeScript:  cfg.Selectors.CodeScript,
		}),
		probprep.WithBrowserBin(cfg.Browser.Bin),
		probprep.WithHeadless(cfg.Browser.Headless),
		probprep.WithNoSandbox(cfg.Browser.NoSandbox),
		probprep.WithLanguage(cfg.Templates.Language),
		probprep.WithTemplateDir(cfg.Templates.Dir),
		probprep.WithTidy(cfg.Output.Tidy),
		probprep.WithSupSub(cfg.Markdown.Superscript),
		probprep.WithHTMLPreview(cfg.Output.HTML),
	}, nil
}

// previewReadme renders the README for the terminal. Failures only warn:
// the files are already written.
func previewReadme(env *Environment, readme []byte) {
	width := 0
	if env.TermWidth != nil {
		width = env.TermWidth()
	}
	out, err := pipeline.RenderTerminal(string(readme), width)
	if err != nil {
		fmt.Fprintf(env.Stderr, "warning: %v\n", err)
		return
	}
	fmt.Fprint(env.Stdout, out)
}

// looksLikeProblemURL reports whether arg can stand in for "fetch <arg>".
func looksLikeProblemURL(arg string) bool {
	return fileutil.IsURL(arg)
}
