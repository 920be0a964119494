package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: probprep <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  fetch      Fetch a problem into README.md and a source file")
	fmt.Fprintln(w, "  doctor     Check browser and environment setup")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "'probprep <url>' is short for 'probprep fetch <url>'.")
	fmt.Fprintln(w, "Run 'probprep help <command>' for details on a specific command.")
}

// printFetchUsage prints usage for the fetch command.
func printFetchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: probprep fetch [url] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fetch a problem page and write <output>/<title>/README.md and")
	fmt.Fprintln(w, "<output>/<title>/<title>.<lang>. The URL and output directory are")
	fmt.Fprintln(w, "asked for when not given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Parent directory of the problem folder")
	fmt.Fprintln(w, "  -l, --lang <ext>          Source language (default cpp)")
	fmt.Fprintln(w, "      --templates <dir>     Directory with header.<lang> and footer.<lang>")
	fmt.Fprintln(w, "      --html                Also write README.html")
	fmt.Fprintln(w, "      --no-tidy             Keep README whitespace as converted")
	fmt.Fprintln(w, "      --no-sup-sub          Drop ^ and _ markers around sup/sub text")
	fmt.Fprintln(w, "      --preview             Print the README in the terminal")
	fmt.Fprintln(w, "      --open                Open the problem folder when done")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Browser:")
	fmt.Fprintln(w, "  -t, --timeout <d>         Wait per page element (default 10s)")
	fmt.Fprintln(w, "      --browser-bin <path>  Chrome/Chromium binary")
	fmt.Fprintln(w, "      --show-browser        Run the browser with a window")
	fmt.Fprintln(w, "      --no-sandbox          Disable the Chrome sandbox (Docker/CI)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show a summary table and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PROBPREP_TIMEOUT          Overrides browser.timeout from the config")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN           Chrome/Chromium binary")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1          Disable the Chrome sandbox")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: probprep doctor [--json] [-c config]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that Chrome can be found, the environment is suitable and the")
	fmt.Fprintln(w, "configured output directory and language are usable.")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: probprep config [-c config]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML: defaults, then the config")
	fmt.Fprintln(w, "file, then environment overrides. Useful as a starting config file.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "fetch":
		printFetchUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: probprep version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: probprep help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "%v: %s\n\n", ErrUnknownCommand, args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
