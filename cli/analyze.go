package cli

import (
	"fmt"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wow-analyzer/config"
	"wow-analyzer/output"
	"wow-analyzer/parser"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		noUpload    bool
		metricsFile string
	)

	cmd := &cobra.Command{
		Use:   "analyze <report.json>",
		Short: "Run the analyzers over a fight report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if metricsFile != "" {
				cfg.Metrics.TextfilePath = metricsFile
			}

			logger, err := config.NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			runID := ulid.Make().String()
			logger = logger.With(zap.String("runID", runID))

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open report: %w", err)
			}
			report, err := parser.DecodeReport(f)
			f.Close()
			if err != nil {
				return err
			}

			metrics := output.NewMetricsExporter()
			p := parser.NewParser(report,
				parser.WithLogger(logger),
				parser.WithRegisterer(metrics.Registry()))
			p.Add(parser.DefaultAnalyzers()...)

			ctx := cmd.Context()
			if err := p.Parse(ctx); err != nil {
				return err
			}
			statistics := p.Statistics()

			if err := output.RenderText(cmd.OutOrStdout(), statistics); err != nil {
				return err
			}

			if cfg.Metrics.TextfilePath != "" {
				metrics.Record(statistics)
				if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
					return err
				}
				logger.Info("Metrics written", zap.String("path", cfg.Metrics.TextfilePath))
			}

			if noUpload || cfg.Sheets.URL == "" {
				logger.Debug("Sheets upload skipped")
				return nil
			}
			credentials, err := os.ReadFile(cfg.Sheets.CredentialsFile)
			if err != nil {
				return fmt.Errorf("failed to read credentials: %w", err)
			}
			client, err := output.NewSheetsClient(ctx, credentials, cfg.Sheets.URL, cfg.Sheets.SheetName, logger)
			if err != nil {
				return err
			}
			return client.UploadStatistics(ctx, runID, statistics)
		},
	}

	cmd.Flags().BoolVar(&noUpload, "no-upload", false, "skip the Google Sheets upload")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile (overrides config)")

	return cmd
}
