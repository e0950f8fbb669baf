// SPDX-License-Identifier: MIT

// Package version carries build metadata injected via ldflags.
package version

var (
	// Version is the consolectl release version; populated by the build
	// system via ldflags.
	Version = "dev"

	// Commit is the git short hash of the build.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)
