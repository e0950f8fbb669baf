// SPDX-License-Identifier: MIT

//go:build unix && !windows

package launcher

import (
	"fmt"
	"syscall"
)

// handoff replaces the current process image with the dev server. Control
// never returns on success; the dev server's exit code and output surface
// directly to the caller's shell.
func handoff(spec *Spec) error {
	if err := syscall.Exec(spec.Path, spec.Args, spec.Env); err != nil {
		return fmt.Errorf("exec %s: %w", spec.Path, err)
	}
	return nil
}
