// SPDX-License-Identifier: MIT

//go:build windows

package procgroup

import (
	"os/exec"
	"syscall"
)

// Process groups are not used on Windows in this context.
func set(cmd *exec.Cmd) {}

// Kill sends a signal to the process on Windows. Since signals are not
// fully supported, it maps SIGKILL to Process.Kill() and treats SIGTERM as
// a no-op; Terminate escalates to SIGKILL after the grace period.
func Kill(cmd *exec.Cmd, sig syscall.Signal) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	if sig == syscall.SIGKILL {
		return cmd.Process.Kill()
	}
	return nil
}
