// Package cli defines the Cobra command tree for the toolbox CLI. Each file
// in this package registers one top-level command (build, matrix, list,
// version) with the root command. Command implementations delegate to
// internal packages for business logic and only handle flag parsing, I/O
// formatting, and diagnostics.
package cli
