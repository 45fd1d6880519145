// Package cli wires the analyzers into the wowanalyzer command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wowanalyzer",
		Short: "Combat log analyzers for a single player's fight",
		Long: `wowanalyzer replays a fight's combat events through talent and item
analyzers, then reports damage, resource and buff uptime totals with
improvement suggestions. Results can be uploaded to Google Sheets and
written as Prometheus metrics.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "path to analyzer.yaml (default: ./analyzer.yaml or ./configs/analyzer.yaml)")

	root.AddCommand(newAnalyzeCmd(), newEstimateCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wowanalyzer %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
		},
	}
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
