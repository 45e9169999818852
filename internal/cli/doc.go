// Package cli implements the command-line interface for team-registry.
//
// The cli package provides the Cobra-based CLI with subcommands for
// building the registry from the master list and service mapping files,
// resolving team names at the prompt, listing teams and per-service
// gaps, and validating a built snapshot. Output is text or JSON.
package cli
