// Package cli defines the Cobra command tree for the auditcat CLI. Each file
// in this package registers one top-level command with the root command.
// Commands load the catalog registry through loadRegistry and only handle
// flag parsing and output formatting.
package cli
