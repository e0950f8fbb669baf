// SPDX-License-Identifier: MIT

//go:build windows

package launcher

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/soulseed/consolectl/internal/procgroup"
)

const terminateGrace = 10 * time.Second

// handoff approximates exec semantics: it spawns the dev server in a new
// process group, forwards termination signals, and exits with the child's
// exit code.
func handoff(spec *Spec) error {
	cmd := exec.Command(spec.Path, spec.Args[1:]...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	procgroup.Set(cmd)

	if err := cmd.Start(); err != nil {
		return err
	}

	waitCh := make(chan error, 1)
	go func() { waitCh <- cmd.Wait() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var err error
	select {
	case err = <-waitCh:
	case <-sigCh:
		err = procgroup.Terminate(cmd, waitCh, terminateGrace)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		return err
	}
	os.Exit(0)
	return nil
}
