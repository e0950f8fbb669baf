// SPDX-License-Identifier: MIT

// consolectl is the developer tooling for the soulseed console: it launches
// the dev server with the SOULSEED_* environment resolved, manages the CSS
// content-scan configuration, and tails the Thin-Waist live streams.
package main

import (
	"fmt"
	"os"

	"github.com/soulseed/consolectl/internal/log"
	"github.com/soulseed/consolectl/internal/version"
)

func main() {
	log.Configure(log.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Service: "consolectl",
		Version: version.Version,
	})

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "launch":
		os.Exit(runLaunch(os.Args[2:]))
	case "env":
		os.Exit(runEnv(os.Args[2:]))
	case "scanconfig":
		os.Exit(runScanConfig(os.Args[2:]))
	case "tail":
		os.Exit(runTail(os.Args[2:]))
	case "version", "--version", "-version":
		fmt.Printf("%s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  consolectl launch [--root DIR] [--dry-run]")
	fmt.Fprintln(os.Stderr, "  consolectl env [--format text|json]")
	fmt.Fprintln(os.Stderr, "  consolectl scanconfig <validate|render|watch|init> [flags]")
	fmt.Fprintln(os.Stderr, "  consolectl tail [--session ID | --cycle ID] [--tenant ID]")
	fmt.Fprintln(os.Stderr, "  consolectl version")
}
