// SPDX-License-Identifier: MIT

// Package procgroup spawns and reaps the dev server as a process group so
// that child processes (bundlers, file watchers) terminate with it.
package procgroup

import (
	"errors"
	"os/exec"
	"syscall"
	"time"
)

var ErrKillFailed = errors.New("kill operation failed")

// Set configures the command to start in a new process group.
// Mandatory for Terminate to reap the whole group.
func Set(cmd *exec.Cmd) {
	set(cmd)
}

// Terminate attempts to gracefully stop a process group. It sends SIGTERM,
// waits for the process to exit (via the provided wait channel), and if it
// doesn't exit within grace, sends SIGKILL. It consumes and returns the
// error from waitCh. Safe to call on nil commands.
func Terminate(cmd *exec.Cmd, waitCh <-chan error, grace time.Duration) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}

	// SIGTERM first; if the process already finished this is a harmless no-op.
	_ = Kill(cmd, syscall.SIGTERM)

	select {
	case err := <-waitCh:
		return err
	case <-time.After(grace):
		_ = Kill(cmd, syscall.SIGKILL)
		// Always drain waitCh; SIGKILL frees a blocked Wait.
		return <-waitCh
	}
}
