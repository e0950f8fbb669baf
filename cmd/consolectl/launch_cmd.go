// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/soulseed/consolectl/internal/config"
	"github.com/soulseed/consolectl/internal/launcher"
	"github.com/soulseed/consolectl/internal/log"
)

func runLaunch(args []string) int {
	fs := flag.NewFlagSet("consolectl launch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var root string
	var dryRun bool
	fs.StringVar(&root, "root", "", "repository root (default: parent of the consolectl binary's directory)")
	fs.BoolVar(&dryRun, "dry-run", false, "print the resolved command line and environment without launching")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.WithComponent("launch")
	cfg := config.FromEnv()

	spec, err := launcher.Prepare(cfg, launcher.Options{Root: root})
	if err != nil {
		logger.Error().
			Err(err).
			Str(log.FieldEvent, "launch.prepare_failed").
			Msg("failed to prepare dev-server launch")
		return 1
	}

	if dryRun {
		fmt.Printf("cwd: %s\n", spec.Dir)
		fmt.Printf("cmd: %s %s\n", spec.Path, strings.Join(spec.Args[1:], " "))
		for _, entry := range cfg.LaunchEnv() {
			fmt.Println(entry)
		}
		return 0
	}

	// Control does not return on success: the process image is replaced.
	if err := launcher.Launch(spec); err != nil {
		logger.Error().
			Err(err).
			Str(log.FieldEvent, "launch.handoff_failed").
			Msg("failed to hand off to dev server")
		return 1
	}
	return 0
}
