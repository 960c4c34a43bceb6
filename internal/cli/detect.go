package cli

import (
	"fmt"
	"os"

	"github.com/dshills/slopcheck/internal/cache"
	"github.com/dshills/slopcheck/internal/config"
	"github.com/dshills/slopcheck/internal/detect"
	"github.com/dshills/slopcheck/internal/output"
	"github.com/dshills/slopcheck/internal/rules"
	"github.com/spf13/cobra"
)

// Shared scan flags
var (
	flagFormat    string
	flagOut       string
	flagKind      string
	flagRules     string
	flagFailScore int
	flagNoCache   bool
)

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown, sarif)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&flagKind, "kind", "", "Scan kind (auto, prose, code)")
	cmd.Flags().StringVar(&flagRules, "rules", "", "Custom rules pack path")
	cmd.Flags().IntVar(&flagFailScore, "fail-score", 0, "Exit non-zero when score reaches this threshold (0 disables)")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the report cache")
}

func buildScanOverrides() map[string]string {
	m := make(map[string]string)
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagKind != "" {
		m["kind"] = flagKind
	}
	if flagRules != "" {
		m["rulesFile"] = flagRules
	}
	if flagFailScore > 0 {
		m["failScore"] = fmt.Sprintf("%d", flagFailScore)
	}
	return m
}

// loadCatalog builds the active catalog from the built-in rules plus an
// optional custom pack.
func loadCatalog(rulesFile string) (*rules.Catalog, error) {
	pack, err := rules.LoadPack(rulesFile)
	if err != nil {
		return nil, err
	}
	return rules.Default().WithPack(pack)
}

// scanKind resolves the configured kind for a path; "auto" defers to the file
// extension.
func scanKind(cfg config.Config, path string) detect.Kind {
	switch cfg.Kind {
	case "prose":
		return detect.KindProse
	case "code":
		return detect.KindCode
	default:
		return detect.KindForPath(path)
	}
}

var detectCmd = &cobra.Command{
	Use:   "detect <file>",
	Short: "Analyze a file and report slop findings with a score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildScanOverrides())
		if err != nil {
			return err
		}
		runDetect(args[0], cfg)
		return nil
	},
}

func runDetect(path string, cfg config.Config) {
	catalog, err := loadCatalog(cfg.RulesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading input: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	kind := scanKind(cfg, path)

	c, err := cache.New(cfg.Cache.Enabled && !flagNoCache, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening cache: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	key := cache.BuildKey(string(data), string(kind), cfg.RulesFile, rules.Version)
	report, hit := c.Get(key)
	if !hit {
		report = detect.Analyze(string(data), detect.Options{Kind: kind, Catalog: catalog})
		if err := c.Put(key, report); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: caching report: %v\n", err)
		}
	}
	// The key is content-addressed, so a hit may come from a different path
	// with identical content.
	report.Input.Path = path

	if err := output.WriteReport(report, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if cfg.FailScore > 0 && report.Score >= cfg.FailScore {
		exitCode = ExitThreshold
	}
}

func init() {
	addScanFlags(detectCmd)
}
