package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// errHelpRequested is returned by flag parsing for -h/--help.
var errHelpRequested = flag.ErrHelp

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// browserFlags holds browser launch flags.
type browserFlags struct {
	bin         string
	showBrowser bool
	noSandbox   bool
	timeout     string
}

// outputFlags holds flags that shape the written files.
type outputFlags struct {
	dir       string
	lang      string
	templates string
	html      bool
	noTidy    bool
	noSupSub  bool
}

// fetchFlags holds all flags for the fetch command.
type fetchFlags struct {
	common  commonFlags
	browser browserFlags
	output  outputFlags
	preview bool
	open    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show a summary table and timing")
}

// addBrowserFlags adds browser flags to a FlagSet.
func addBrowserFlags(fs *flag.FlagSet, f *browserFlags) {
	fs.StringVarP(&f.timeout, "timeout", "t", "", "wait per page element (e.g., 10s, 1m)")
	fs.StringVar(&f.bin, "browser-bin", "", "Chrome/Chromium binary")
	fs.BoolVar(&f.showBrowser, "show-browser", false, "run the browser with a window")
	fs.BoolVar(&f.noSandbox, "no-sandbox", false, "disable the Chrome sandbox (Docker/CI)")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "parent directory of the problem folder")
	fs.StringVarP(&f.lang, "lang", "l", "", "source language (file extension)")
	fs.StringVar(&f.templates, "templates", "", "directory with header.<lang> and footer.<lang>")
	fs.BoolVar(&f.html, "html", false, "also write README.html")
	fs.BoolVar(&f.noTidy, "no-tidy", false, "keep README whitespace as converted")
	fs.BoolVar(&f.noSupSub, "no-sup-sub", false, "drop ^ and _ markers around superscripts and subscripts")
}

// parseFetchFlags parses fetch command flags and returns positional args.
func parseFetchFlags(args []string, stderr io.Writer) (*fetchFlags, []string, error) {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &fetchFlags{}

	addCommonFlags(fs, &f.common)
	addBrowserFlags(fs, &f.browser)
	addOutputFlags(fs, &f.output)
	fs.BoolVar(&f.preview, "preview", false, "print the README in the terminal")
	fs.BoolVar(&f.open, "open", false, "open the problem folder when done")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, nil, err
		}
		return nil, nil, err
	}

	if f.common.quiet && f.common.verbose {
		fmt.Fprintln(stderr, "warning: --quiet and --verbose both set, --quiet wins")
		f.common.verbose = false
	}

	if len(fs.Args()) > 1 {
		return nil, nil, fmt.Errorf("expected at most one URL, got %d", len(fs.Args()))
	}

	return f, fs.Args(), nil
}
