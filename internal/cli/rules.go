package cli

import (
	"fmt"
	"os"

	"github.com/dshills/slopcheck/internal/config"
	"github.com/dshills/slopcheck/internal/rules"
	"github.com/spf13/cobra"
)

var flagListRules string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the active rule catalog grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		overrides := map[string]string{}
		if flagListRules != "" {
			overrides["rulesFile"] = flagListRules
		}
		cfg, err := config.Load(overrides)
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg.RulesFile)
		if err != nil {
			return err
		}

		for _, cat := range rules.Categories() {
			rs := catalog.Rules(cat)
			fmt.Fprintf(os.Stdout, "%s (weight %d, %d rules)\n", cat, catalog.Weight(cat), len(rs))
			for _, r := range rs {
				marker := " "
				if r.Aggressive {
					marker = "A"
				}
				fmt.Fprintf(os.Stdout, "  %s %-26s %s\n", marker, r.Name, r.Pattern.String())
			}
			fmt.Fprintln(os.Stdout)
		}
		return nil
	},
}

func init() {
	rulesCmd.Flags().StringVar(&flagListRules, "rules", "", "Custom rules pack path")
}
