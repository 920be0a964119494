package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand indicates the first argument names no command.
var ErrUnknownCommand = errors.New("unknown command")

// commands lists the subcommand names, in help order.
var commands = []string{"fetch", "doctor", "config", "version", "help"}

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	// A bare URL is shorthand for "fetch <url>".
	if !isCommand(cmd) && looksLikeProblemURL(cmd) {
		cmd, rest = "fetch", args[1:]
	}

	switch cmd {
	case "fetch":
		return runFetchCmd(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "config":
		return runConfigCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "probprep %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "%v: %s\n\n", ErrUnknownCommand, cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// runFetchCmd parses fetch flags and runs the fetch under a signal-aware context.
func runFetchCmd(args []string, env *Environment) int {
	flags, positional, err := parseFetchFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, errHelpRequested) {
			printFetchUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		fmt.Fprintln(env.Stderr, "Run 'probprep help fetch' for usage.")
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runFetch(ctx, positional, flags, env); err != nil {
		printError(env, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether name is a known subcommand.
func isCommand(name string) bool {
	for _, c := range commands {
		if c == name {
			return true
		}
	}
	return false
}

// printError writes err and any matching hint to stderr.
func printError(env *Environment, err error) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(env.Stderr, "%s %v%s\n", red("error:"), err, hintFor(err))
}
