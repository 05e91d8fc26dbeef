package main

import (
	"fmt"
	"os"

	"github.com/ogurasousui/employee-org-analyzer/internal/adapters/report"
	"github.com/ogurasousui/employee-org-analyzer/internal/app"
	"github.com/ogurasousui/employee-org-analyzer/internal/platform/config"
	"github.com/ogurasousui/employee-org-analyzer/internal/platform/logging"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	configPath string
	csvPath    string
	format     string
}

func newRootCmd() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:           "analyze",
		Short:         "Analyze salary bands and reporting depth of an organization",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	cmd.Flags().StringVar(&opts.csvPath, "file", "", "CSV file to analyze; overrides the configured source")
	cmd.Flags().StringVar(&opts.format, "format", report.FormatText, "output format (text|json)")

	return cmd
}

func loadConfig(opts analyzeOptions) (*config.Config, error) {
	if opts.csvPath != "" && opts.configPath == "" && os.Getenv("CONFIG_PATH") == "" {
		return config.ForCSV(opts.csvPath)
	}

	cfg, err := config.Load(config.EffectivePath(opts.configPath))
	if err != nil {
		return nil, err
	}
	if opts.csvPath != "" {
		cfg.Source.Kind = config.SourceCSV
		cfg.Source.CSV.Path = opts.csvPath
		if cfg.Source.CSV.Delimiter == 0 {
			cfg.Source.CSV.Delimiter = ','
		}
	}
	return cfg, nil
}

func runAnalyze(cmd *cobra.Command, opts analyzeOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, cleanup, err := app.NewAnalysisService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := svc.Analyze(ctx)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	return report.Write(cmd.OutOrStdout(), opts.format, result)
}
