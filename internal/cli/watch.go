package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/dshills/slopcheck/internal/config"
	"github.com/dshills/slopcheck/internal/detect"
	"github.com/dshills/slopcheck/internal/logger"
	"github.com/dshills/slopcheck/internal/output"
	"github.com/dshills/slopcheck/internal/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <path>",
	Short: "Watch a file or directory and re-run detection on change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildScanOverrides())
		if err != nil {
			return err
		}
		log, err := logger.New(logger.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer log.Sync() //nolint:errcheck

		catalog, err := loadCatalog(cfg.RulesFile)
		if err != nil {
			return err
		}

		handler := func(path string) {
			report, err := detect.AnalyzeFile(path, detect.Options{
				Kind:    scanKind(cfg, path),
				Catalog: catalog,
			})
			if err != nil {
				log.Warn("scan failed", zap.String("path", path), zap.Error(err))
				return
			}
			log.Info("scan complete",
				zap.String("path", path),
				zap.Int("score", report.Score),
				zap.String("verdict", report.Verdict),
				zap.Int("findings", report.Summary.TotalFindings),
			)
			if err := output.WriteReport(report, cfg.Format, ""); err != nil {
				log.Warn("writing report", zap.Error(err))
			}
		}

		w, err := watch.New(log, handler)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		defer w.Close()

		if err := w.Add(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
		}
		return nil
	},
}

func init() {
	addScanFlags(watchCmd)
}
