package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes. Missing input files and other runtime failures exit 4; a score
// at or above --fail-score exits 1 for CI gating.
const (
	ExitSuccess      = 0
	ExitThreshold    = 1
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "slopcheck",
	Short: "Detect and clean slop in prose and code",
	Long:  "Slopcheck scores documents against a catalog of cliché, buzzword, and boilerplate patterns, and rewrites them with deterministic substitutions.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print slopcheck version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "slopcheck version %s\n", version)
	},
}
