package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wow-analyzer/format"
	"wow-analyzer/stats"
)

func newEstimateCmd() *cobra.Command {
	var (
		trials      int
		probability float64
		successes   int
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the chance of at most k procs in n tries",
		Long: `Estimate P(X <= k) for X ~ Binomial(n, p) with the normal approximation.

  wowanalyzer estimate --trials 100 --probability 0.25 --successes 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := stats.EstimateCumulativeBinomialProbability(trials, probability, successes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "P(X <= %d) ~ %s%%\n", successes, format.Percentage(p, 2))
			if p > 0 && p < 1 && !stats.MeetsApproximationRule(trials, probability) {
				fmt.Fprintln(cmd.OutOrStdout(), "note: too few trials for the normal approximation, error may exceed 2%")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&trials, "trials", "n", 0, "number of tries (e.g. auto shots)")
	cmd.Flags().Float64VarP(&probability, "probability", "p", 0, "chance of success per try, 0..1")
	cmd.Flags().IntVarP(&successes, "successes", "k", 0, "observed successes (e.g. procs)")
	_ = cmd.MarkFlagRequired("trials")
	_ = cmd.MarkFlagRequired("probability")

	return cmd
}
