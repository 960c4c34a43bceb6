// Package cli wires together the Cobra command tree for the slopcheck
// binary.
//
// It defines the root command and all subcommands (detect, clean, rules,
// watch, config, cache, version), binds flags, reads configuration, invokes
// the detection and cleaning engines, and returns deterministic exit codes
// for CI gating.
package cli
