//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup terminates the browser process tree rooted at pid.
// Non-positive PIDs are ignored.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// /F forces termination, /T includes child processes.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
