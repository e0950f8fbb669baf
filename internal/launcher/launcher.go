// SPDX-License-Identifier: MIT

// Package launcher prepares and hands control over to the console
// dev-server process.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/soulseed/consolectl/internal/config"
	"github.com/soulseed/consolectl/internal/log"
)

// The dev-server invocation is fixed: it never varies with input.
const (
	DevServerBinary = "dx"

	platformArg = "web"
	packageArg  = "soulseed-console"
	portArg     = "5173"
)

// Args returns the fixed dev-server argument list (excluding the binary).
func Args() []string {
	return []string{"serve", "--platform", platformArg, "--package", packageArg, "--port", portArg}
}

// Spec is a fully resolved launch: binary path, argument list, working
// directory and child environment.
type Spec struct {
	Path string   // absolute path to the dev-server binary
	Args []string // argv, including argv[0]
	Dir  string   // repository root; always the working directory at handoff
	Env  []string // full child environment, SOULSEED_* resolved
}

// Options control launch preparation.
type Options struct {
	Root string // repository root override; empty means auto-detect
}

// RepoRoot resolves the repository root: the parent of the directory
// containing the running executable. The launcher always runs the dev
// server from there, regardless of the caller's working directory.
func RepoRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable symlinks: %w", err)
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

// Prepare resolves a launch Spec without executing anything: repo root,
// binary lookup, and the child environment with the SOULSEED_* variables
// exported at their resolved values.
func Prepare(cfg config.Config, opts Options) (*Spec, error) {
	root := opts.Root
	if root == "" {
		detected, err := RepoRoot()
		if err != nil {
			return nil, err
		}
		root = detected
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("repository root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repository root %s is not a directory", root)
	}

	path, err := exec.LookPath(DevServerBinary)
	if err != nil {
		return nil, fmt.Errorf("dev-server binary %q not found on PATH: %w", DevServerBinary, err)
	}

	return &Spec{
		Path: path,
		Args: append([]string{DevServerBinary}, Args()...),
		Dir:  root,
		Env:  mergeEnv(os.Environ(), cfg.LaunchEnv()),
	}, nil
}

// Launch replaces the current process with the dev server described by the
// spec. On platforms without exec semantics it spawns the dev server in a
// new process group, forwards termination signals, and exits with the
// child's exit code; in that case Launch only returns on error.
func Launch(spec *Spec) error {
	logger := log.WithComponent("launcher")
	logger.Info().
		Str(log.FieldEvent, "launch.handoff").
		Str(log.FieldPath, spec.Path).
		Strs("args", spec.Args[1:]).
		Str("dir", spec.Dir).
		Msg("handing off to dev server")

	if err := os.Chdir(spec.Dir); err != nil {
		return fmt.Errorf("chdir %s: %w", spec.Dir, err)
	}
	return handoff(spec)
}

// mergeEnv overlays the given KEY=VALUE overrides onto a base environment,
// replacing existing entries for the same key.
func mergeEnv(base, overrides []string) []string {
	merged := make([]string, 0, len(base)+len(overrides))
	replaced := make(map[string]bool, len(overrides))
	for _, entry := range base {
		key := envKey(entry)
		override, ok := lookupEnvEntry(overrides, key)
		if ok {
			merged = append(merged, override)
			replaced[key] = true
			continue
		}
		merged = append(merged, entry)
	}
	for _, entry := range overrides {
		if !replaced[envKey(entry)] {
			merged = append(merged, entry)
		}
	}
	return merged
}

func envKey(entry string) string {
	for i := 0; i < len(entry); i++ {
		if entry[i] == '=' {
			return entry[:i]
		}
	}
	return entry
}

func lookupEnvEntry(entries []string, key string) (string, bool) {
	for _, entry := range entries {
		if envKey(entry) == key {
			return entry, true
		}
	}
	return "", false
}
