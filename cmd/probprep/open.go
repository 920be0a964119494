package main

import (
	"os"
	"os/exec"
	"runtime"

	"golang.org/x/term"
)

// openCommand returns the program and arguments that open dir in the
// platform file manager.
func openCommand(goos, dir string) (string, []string) {
	switch goos {
	case "windows":
		return "explorer", []string{dir}
	case "darwin":
		return "open", []string{dir}
	default:
		return "xdg-open", []string{dir}
	}
}

// openDirectory opens dir without waiting for the file manager to exit.
func openDirectory(dir string) error {
	name, args := openCommand(runtime.GOOS, dir)
	cmd := exec.Command(name, args...) // #nosec G204 -- fixed program, dir is the directory just written
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// stdoutWidth returns the terminal width of stdout, or 0 when stdout is not
// a terminal.
func stdoutWidth() int {
	fd := int(os.Stdout.Fd()) // #nosec G115 -- file descriptors fit in int
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
