package cli

import (
	"fmt"
	"os"

	"github.com/dshills/slopcheck/internal/clean"
	"github.com/dshills/slopcheck/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagAggressive bool
	flagWrite      bool
	flagCleanOut   string
	flagCleanRules string
)

func buildCleanOverrides() map[string]string {
	m := make(map[string]string)
	if flagAggressive {
		m["aggressive"] = "true"
	}
	if flagCleanRules != "" {
		m["rulesFile"] = flagCleanRules
	}
	return m
}

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Rewrite a file with slop removed or simplified",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildCleanOverrides())
		if err != nil {
			return err
		}
		runClean(args[0], cfg)
		return nil
	},
}

func runClean(path string, cfg config.Config) {
	catalog, err := loadCatalog(cfg.RulesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	cleaned, err := clean.File(path, clean.Options{
		Aggressive: cfg.Aggressive,
		Catalog:    catalog,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	switch {
	case flagWrite:
		if err := os.WriteFile(path, []byte(cleaned), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}
		fmt.Fprintf(os.Stderr, "Cleaned %s\n", path)
	case flagCleanOut != "":
		if err := os.WriteFile(flagCleanOut, []byte(cleaned), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}
	default:
		fmt.Fprint(os.Stdout, cleaned)
	}
}

func init() {
	cleanCmd.Flags().BoolVar(&flagAggressive, "aggressive", false, "Additionally strip transition words")
	cleanCmd.Flags().BoolVar(&flagWrite, "write", false, "Rewrite the input file in place")
	cleanCmd.Flags().StringVar(&flagCleanOut, "out", "", "Output file path (default: stdout)")
	cleanCmd.Flags().StringVar(&flagCleanRules, "rules", "", "Custom rules pack path")
}
