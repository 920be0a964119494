package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// runConfigCmd prints the effective configuration as YAML.
func runConfigCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	var name string
	fs.StringVarP(&name, "config", "c", "", "config file name or path")
	fs.Usage = func() { printConfigUsage(env.Stderr) }

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
	if err := cfg.Validate(); err != nil {
		printError(env, err)
		return exitCodeFor(err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		printError(env, fmt.Errorf("rendering config: %w", err))
		return ExitGeneral
	}
	_, _ = env.Stdout.Write(data)
	return ExitSuccess
}
