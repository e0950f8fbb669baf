// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/soulseed/consolectl/internal/scanconfig"
)

const (
	defaultScanConfigPath = "scanconfig.yaml"
	defaultArtifactPath   = "tailwind.config.js"
)

func runScanConfig(args []string) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printScanConfigUsage()
		return 0
	}

	switch args[0] {
	case "validate":
		return runScanConfigValidate(args[1:])
	case "render":
		return runScanConfigRender(args[1:])
	case "watch":
		return runScanConfigWatch(args[1:])
	case "init":
		return runScanConfigInit(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n\n", args[0])
		printScanConfigUsage()
		return 2
	}
}

func printScanConfigUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  consolectl scanconfig validate [--file|-f scanconfig.yaml]")
	fmt.Fprintln(os.Stderr, "  consolectl scanconfig render [--file|-f scanconfig.yaml] [--out|-o tailwind.config.js]")
	fmt.Fprintln(os.Stderr, "  consolectl scanconfig watch [--file|-f scanconfig.yaml] [--out|-o tailwind.config.js]")
	fmt.Fprintln(os.Stderr, "  consolectl scanconfig init [--file|-f scanconfig.yaml]")
}

func scanConfigFlags(name string, withOut bool) (*flag.FlagSet, *string, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	file := fs.String("file", defaultScanConfigPath, "path to declarative scan config")
	fs.StringVar(file, "f", defaultScanConfigPath, "path to declarative scan config (shorthand)")

	var out *string
	if withOut {
		out = fs.String("out", defaultArtifactPath, "path to the rendered artifact")
		fs.StringVar(out, "o", defaultArtifactPath, "path to the rendered artifact (shorthand)")
	}
	return fs, file, out
}

func runScanConfigValidate(args []string) int {
	fs, file, _ := scanConfigFlags("consolectl scanconfig validate", false)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := scanconfig.Load(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error in %s:\n  %v\n", *file, err)
		return 1
	}
	if err := scanconfig.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Validation error in %s:\n  %v\n", *file, err)
		return 1
	}

	fmt.Printf("✓ %s is valid (%d content patterns)\n", *file, len(cfg.Content))
	return 0
}

func runScanConfigRender(args []string) int {
	fs, file, out := scanConfigFlags("consolectl scanconfig render", true)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := scanconfig.Load(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error in %s:\n  %v\n", *file, err)
		return 1
	}
	if err := scanconfig.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Validation error in %s:\n  %v\n", *file, err)
		return 1
	}
	if err := scanconfig.WriteFile(*out, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("✓ rendered %s from %s\n", *out, *file)
	return 0
}

func runScanConfigWatch(args []string) int {
	fs, file, out := scanConfigFlags("consolectl scanconfig watch", true)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := scanconfig.Watch(ctx, *file, *out); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runScanConfigInit(args []string) int {
	fs, file, _ := scanConfigFlags("consolectl scanconfig init", false)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if _, err := os.Stat(*file); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", *file)
		return 1
	}
	if err := scanconfig.Save(*file, scanconfig.Default()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("✓ wrote %s\n", *file)
	return 0
}
