package main

import (
	"encoding/json"
	"fmt"

	"ubench/internal/format"
	"ubench/internal/history"
	"ubench/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configuredMean formats a run's mean with the configured unit and
// rounding.
func configuredMean(r history.Run) string {
	unit, err := format.ParseUnit(viper.GetString("units"))
	if err != nil {
		unit = format.UnitNone
	}
	return format.Format(r.MeanNs, unit, viper.GetInt("sign_digits"))
}

func newHistoryCmd() *cobra.Command {
	var (
		limit   int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded benchmark runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStoreFunc(viper.GetString("history_file"))
			if err != nil {
				return fmt.Errorf("failed to open history store: %w", err)
			}
			defer store.Close()

			runs, err := store.LoadRecent(limit)
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				data, err := json.MarshalIndent(runs, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs.")
				return nil
			}
			fmt.Fprintln(out, ui.Header("Benchmark history"))
			ui.RenderRuns(out, runs, configuredMean)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the runs as JSON")

	return cmd
}
