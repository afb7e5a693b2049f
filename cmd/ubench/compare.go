package main

import (
	"fmt"

	"ubench/internal/history"
	"ubench/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCompareCmd() *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "compare [prev-label curr-label]",
		Short: "Compare two recorded runs for regressions",
		Long: `Compares the two most recent recorded runs, or with two label arguments
the latest run recorded under each label. The mean delta is classified
against the threshold as PASS, FAIL (regression) or IMPR (improvement).`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return fmt.Errorf("compare takes either no labels or exactly two, got 1")
			}
			if !cmd.Flags().Changed("threshold") {
				threshold = viper.GetFloat64("threshold")
			}
			if threshold <= 0 {
				return fmt.Errorf("threshold must be positive, got %v", threshold)
			}

			store, err := newStoreFunc(viper.GetString("history_file"))
			if err != nil {
				return fmt.Errorf("failed to open history store: %w", err)
			}
			defer store.Close()

			var prev, curr history.Run
			if len(args) == 2 {
				p, err := store.LoadByLabel(args[0])
				if err != nil {
					return err
				}
				if p == nil {
					return fmt.Errorf("no recorded run with label %q", args[0])
				}
				c, err := store.LoadByLabel(args[1])
				if err != nil {
					return err
				}
				if c == nil {
					return fmt.Errorf("no recorded run with label %q", args[1])
				}
				prev, curr = *p, *c
			} else {
				runs, err := store.LoadRecent(2)
				if err != nil {
					return fmt.Errorf("failed to load history: %w", err)
				}
				if len(runs) < 2 {
					return fmt.Errorf("need at least two recorded runs to compare, have %d", len(runs))
				}
				curr, prev = runs[0], runs[1]
			}

			c := history.Compare(prev, curr)
			ui.RenderComparison(cmd.OutOrStdout(), c, threshold, configuredMean)
			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", 10.0, "percentage threshold for regression warning")

	return cmd
}
