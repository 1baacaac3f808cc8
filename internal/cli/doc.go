// Package cli defines the Cobra command tree for the impero CLI. The root
// command runs the project generator; config and version are the only
// subcommands. Commands handle flags, prompting and output formatting and
// delegate the work to internal/generator.
package cli
