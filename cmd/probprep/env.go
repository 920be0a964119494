package main

import (
	"context"
	"io"
	"os"

	probprep "github.com/alnah/go-probprep"
)

// Preparer is the part of probprep.Preparer the CLI uses.
type Preparer interface {
	Prepare(ctx context.Context, url string) (*probprep.Result, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Preparer = (*probprep.Preparer)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	LookupEnv func(string) (string, bool)

	// NewPreparer builds the preparer for a fetch.
	NewPreparer func(opts ...probprep.Option) (Preparer, error)

	// OpenDir shows a directory in the platform file manager.
	OpenDir func(dir string) error

	// TermWidth returns the terminal width for previews, or 0 if unknown.
	TermWidth func() int
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		LookupEnv:   os.LookupEnv,
		NewPreparer: newPreparer,
		OpenDir:     openDirectory,
		TermWidth:   stdoutWidth,
	}
}

// newPreparer adapts probprep.NewPreparer to the Preparer interface.
func newPreparer(opts ...probprep.Option) (Preparer, error) {
	p, err := probprep.NewPreparer(opts...)
	if err != nil {
		return nil, err
	}
	return p, nil
}
